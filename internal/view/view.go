package view

import (
	"embed"
	"html"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// ExpenseTypes are the choices of the new bill form
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// Templates parses the embedded page templates. Page names are the file
// names: bills.html, new_bill.html, error.html.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"expenseTypes": func() []string { return ExpenseTypes },
		"billURLAttr":  BillURLAttr,
	}).ParseFS(files, "templates/*.html"))
}

// BillURLAttr renders data-bill-url with HTML escaping only, so the attribute
// keeps the exact fileUrl of the bill
func BillURLAttr(fileURL string) template.HTMLAttr {
	return template.HTMLAttr(`data-bill-url="` + html.EscapeString(fileURL) + `"`)
}
