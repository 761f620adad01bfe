package service

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"

	"billed-fe-svc/internal/models"
	"billed-fe-svc/pkg/logger"
)

func newTestLogger() (*logger.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	return logger.Wrap(l), hook
}

// billsFixture is deliberately not in date order
func billsFixture() []models.Bill {
	return []models.Bill{
		{
			ID:         "BeKy5Mo4jkmdfPGYpTxZ",
			Email:      "a@a",
			Type:       "Transports",
			Name:       "test1",
			Amount:     decimal.NewFromInt(100),
			Date:       "2001-01-01",
			Pct:        20,
			Commentary: "plop",
			FileURL:    "https://test.storage.tld/v0/b/billable-677b6/1592770761.jpeg",
			FileName:   "1592770761.jpeg",
			Status:     models.BillStatusRefused,
		},
		{
			ID:           "47qAXb6fIm2zOKkLzMro",
			Email:        "a@a",
			Type:         "Hôtel et logement",
			Name:         "encore",
			Amount:       decimal.NewFromInt(400),
			Date:         "2004-04-04",
			VAT:          "80",
			Pct:          20,
			Commentary:   "séminaire billed",
			CommentAdmin: "ok",
			FileURL:      "https://test.storage.tld/v0/b/billable-677b6/preview-facture-free-201801-pdf-1.jpg",
			FileName:     "preview-facture-free-201801-pdf-1.jpg",
			Status:       models.BillStatusPending,
		},
		{
			ID:       "qcCK3SzECmaZAGRrHjaC",
			Email:    "a@a",
			Type:     "Restaurants et bars",
			Name:     "test2",
			Amount:   decimal.NewFromInt(200),
			Date:     "2002-02-02",
			VAT:      "40",
			Pct:      20,
			FileURL:  "https://test.storage.tld/v0/b/billable-677b6/preview-facture-free-201801-pdf-1.jpg",
			FileName: "preview-facture-free-201801-pdf-1.jpg",
			Status:   models.BillStatusRefused,
		},
		{
			ID:       "UIUZtnPQvnbFnB0ozvJh",
			Email:    "a@a",
			Type:     "Services en ligne",
			Name:     "test3",
			Amount:   decimal.NewFromInt(300),
			Date:     "2003-03-03",
			VAT:      "60",
			Pct:      20,
			FileURL:  "https://test.storage.tld/v0/b/billable-677b6/facture-client-php.png",
			FileName: "facture-client-php.png",
			Status:   models.BillStatusAccepted,
		},
	}
}
