package services

import (
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
	"strconv"
	"strings"
)

var ErrContactDisabled = errors.New("contact form disabled")

type MailSender interface {
	Send(from string, to []string, msg []byte) error
}

type smtpSender struct {
	addr string
	auth smtp.Auth
}

func (s *smtpSender) Send(from string, to []string, msg []byte) error {
	return smtp.SendMail(s.addr, s.auth, from, to, msg)
}

type ContactServiceInterface interface {
	Send(msg models.ContactMessage) error
}

type ContactService struct {
	conf   structures.ContactConfig
	sender MailSender
	logger providers.Logger
}

func NewContactService(conf *structures.Config, logger providers.Logger) ContactServiceInterface {
	c := conf.Contact
	sender := &smtpSender{
		addr: net.JoinHostPort(c.SmtpHost, strconv.Itoa(c.SmtpPort)),
		auth: smtp.PlainAuth("", c.SmtpUser, c.SmtpPass, c.SmtpHost),
	}
	return newContactService(c, sender, logger)
}

func newContactService(conf structures.ContactConfig, sender MailSender, logger providers.Logger) *ContactService {
	return &ContactService{conf: conf, sender: sender, logger: logger}
}

func (c *ContactService) Send(msg models.ContactMessage) error {
	if !c.conf.Enabled {
		return ErrContactDisabled
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := c.sender.Send(c.conf.SmtpUser, []string{c.conf.To}, composeMail(c.conf, msg)); err != nil {
		c.logger.Errorf(providers.TypeWrite, "Unable to deliver contact message from %s: %s", msg.Email, err)
		return fmt.Errorf("unable to deliver message: %w", err)
	}

	c.logger.Infof(providers.TypeWrite, "Contact message delivered from %s", msg.Email)
	return nil
}

func composeMail(conf structures.ContactConfig, msg models.ContactMessage) []byte {
	var b strings.Builder
	b.WriteString("To: " + conf.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + msg.Name + "\r\n")
	b.WriteString("From: " + conf.SmtpUser + "\r\n")
	b.WriteString("Reply-To: " + msg.Email + "\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	b.WriteString("Name: " + msg.Name + "\r\n")
	b.WriteString("Email: " + msg.Email + "\r\n")
	b.WriteString("Message:\r\n" + msg.Message + "\r\n")
	return []byte(b.String())
}
