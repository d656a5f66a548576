package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

// customerRequest carries the password on the way in; the model itself never
// serializes it back out.
type customerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (r customerRequest) toModel() models.Customer {
	return models.Customer{
		Name:        r.Name,
		Email:       r.Email,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
	}
}

func getCustomers(c *gin.Context) {
	page, err := services.Customers.List(pageParams(c))
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, page)
}

func getCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	customer, err := services.Customers.GetByID(id)
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func createCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	customer := req.toModel()
	if err := services.Customers.Create(&customer); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func updateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	details := req.toModel()
	customer, err := services.Customers.Update(id, &details)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func deleteCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := services.Customers.Delete(id); err != nil {
		respondError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}
