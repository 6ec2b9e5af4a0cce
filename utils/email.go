package utils

import (
	"bytes"
	"html/template"
	"jetsetgo/config"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"
)

var hotelStatusTemplate = template.Must(template.New("status").Parse(
	`<p>Hello {{.HotelName}},</p>
<p>Your hotel registration is now <b>{{.Status}}</b>.</p>`))

var pendingDigestTemplate = template.Must(template.New("digest").Parse(
	`<p>{{len .}} hotel registration(s) are waiting for review:</p>
<ul>{{range .}}<li>{{.HotelName}} ({{.HotelEmail}})</li>{{end}}</ul>`))

type HotelStatusData struct {
	HotelName string
	Status    string
}

type PendingHotel struct {
	HotelName  string
	HotelEmail string
}

// MailEnabled reports whether an SMTP host is configured.
func MailEnabled() bool {
	return config.Config("SMTP_HOST") != ""
}

// SendHotelStatusEmail tells the hotel owner about a status change (async).
func SendHotelStatusEmail(to string, data HotelStatusData) {
	if !MailEnabled() || to == "" {
		return
	}
	go func() {
		var body bytes.Buffer
		if err := hotelStatusTemplate.Execute(&body, data); err != nil {
			log.Printf("failed to render status email: %v", err)
			return
		}
		if err := send(to, "Your JetSetGo hotel registration is "+data.Status, body.String()); err != nil {
			log.Printf("failed to send status email to %s: %v", to, err)
		}
	}()
}

// SendPendingDigest mails the admin the list of pending hotels (sync).
func SendPendingDigest(to string, hotels []PendingHotel) error {
	var body bytes.Buffer
	if err := pendingDigestTemplate.Execute(&body, hotels); err != nil {
		return err
	}
	return send(to, strconv.Itoa(len(hotels))+" hotel registration(s) pending", body.String())
}

func send(to, subject, html string) error {
	port, _ := strconv.Atoi(config.Config("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
