package main

import (
	"log"
	"time"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/models"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/pagination"
)

func daysFromNow(days int) *models.Date {
	t := time.Now().AddDate(0, 0, days)
	d := models.NewDate(t.Year(), t.Month(), t.Day())
	return &d
}

// seedDemoData populates a handful of demo rows on an empty database.
func seedDemoData() error {
	existing, err := services.Authors.List(pagination.Default())
	if err != nil {
		return err
	}
	if existing.TotalElements > 0 {
		return nil
	}

	log.Println("Seeding demo data...")

	ali := models.Author{Name: "ali", BirthDate: models.NewDate(1995, time.July, 31), Nationality: "syrian"}
	orwell := models.Author{Name: "george orwell", BirthDate: models.NewDate(1930, time.June, 25), Nationality: "British"}
	for _, a := range []*models.Author{&ali, &orwell} {
		if err := services.Authors.Create(a); err != nil {
			return err
		}
	}

	beHappy := models.Book{
		Title: "be happy", Isbn: "978-0747532743",
		PublicationDate: models.NewDate(2015, time.June, 26),
		Genre:           "life-coaching", Available: true, AuthorID: ali.ID,
	}
	nineteen84 := models.Book{
		Title: "1984", Isbn: "978-0452284234",
		PublicationDate: models.NewDate(1960, time.June, 8),
		Genre:           "political", Available: true, AuthorID: orwell.ID,
	}
	for _, b := range []*models.Book{&beHappy, &nineteen84} {
		if err := services.Books.Create(b); err != nil {
			return err
		}
	}

	sawy := models.Customer{
		Name: "sawy", Email: "sawy@example.com", Address: "123 Main St",
		PhoneNumber: "01234567893", Password: "password123",
	}
	jane := models.Customer{
		Name: "Jane Smith", Email: "jane@example.com", Address: "456 Elm St",
		PhoneNumber: "01234567804", Password: "password456",
	}
	for _, c := range []*models.Customer{&sawy, &jane} {
		if err := services.Customers.Create(c); err != nil {
			return err
		}
	}

	records := []models.BorrowingRecord{
		{CustomerID: sawy.ID, BookID: beHappy.ID, BorrowDate: daysFromNow(-10), ReturnDate: daysFromNow(20)},
		{CustomerID: jane.ID, BookID: nineteen84.ID, BorrowDate: daysFromNow(-5), ReturnDate: daysFromNow(15)},
	}
	for i := range records {
		if err := services.Borrowings.Create(&records[i]); err != nil {
			return err
		}
	}

	log.Println("Demo data seeded")
	return nil
}
