package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/config"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/database"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

var (
	cfg      *config.Config
	services *service.Services
)

func main() {
	log.Println("Starting library service...")

	var err error
	cfg, err = config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	var store *cache.Store
	if cfg.Cache.Enabled {
		store, err = cache.New(cfg.Cache.Capacity)
		if err != nil {
			log.Fatalf("Cache init failed: %v", err)
		}
		log.Printf("Cache enabled with capacity %d", cfg.Cache.Capacity)
	}

	services = service.New(db, store, service.BcryptHasher)

	if cfg.Seed {
		if err := seedDemoData(); err != nil {
			log.Printf("Failed to seed demo data: %v", err)
		}
	}

	server := setupRouter()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Library service starting on %s", addr)
	if err := server.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func setupRouter() *gin.Engine {
	server := gin.Default()
	server.Use(requestID())

	api := server.Group("/api/v1")

	api.GET("/authors", getAuthors)
	api.GET("/authors/:id", getAuthor)
	api.POST("/authors", createAuthor)
	api.PUT("/authors/:id", updateAuthor)
	api.DELETE("/authors/:id", deleteAuthor)

	api.GET("/books", getBooks)
	api.GET("/books/search", searchBooks)
	api.GET("/books/:id", getBook)
	api.POST("/books", createBook)
	api.PUT("/books/:id", updateBook)
	api.DELETE("/books/:id", deleteBook)

	api.GET("/customers", getCustomers)
	api.GET("/customers/:id", getCustomer)
	api.POST("/customers", createCustomer)
	api.PUT("/customers/:id", updateCustomer)
	api.DELETE("/customers/:id", deleteCustomer)

	api.GET("/borrowings", getBorrowings)
	api.GET("/borrowings/search", searchBorrowings)
	api.GET("/borrowings/:id", getBorrowing)
	api.POST("/borrowings", createBorrowing)
	api.PUT("/borrowings/:id", updateBorrowing)
	api.DELETE("/borrowings/:id", deleteBorrowing)

	server.GET("/manage/health", healthCheck)

	return server
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
	})
}
