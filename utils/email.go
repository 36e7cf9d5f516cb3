package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation mail template.
type OrderConfirmationData struct {
	OrderCode string
	Items     []OrderConfirmationItem
	Total     float64
}

type OrderConfirmationItem struct {
	MovieName string
	Amount    int
	Price     float64
}

var orderMailTemplate = template.Must(template.New("order").Parse(`
<h2>Thanks for your order!</h2>
<p>Order <strong>{{.OrderCode}}</strong> is confirmed.</p>
<table>
{{range .Items}}<tr><td>{{.MovieName}}</td><td>{{.Amount}} x {{printf "%.2f" .Price}}</td></tr>
{{end}}</table>
<p>Total: <strong>{{printf "%.2f" .Total}}</strong></p>
`))

// SendOrderConfirmationEmail mails the order summary. Async so checkout does
// not block on SMTP.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		var body bytes.Buffer
		if err := orderMailTemplate.Execute(&body, data); err != nil {
			log.Printf("order mail template failed: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("Order confirmation #%s", data.OrderCode))
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("order mail to %s failed: %v", to, err)
		}
	}()
}
