package mail

import (
	"fmt"
	"html"
	"net/url"
	"strings"
)

// Templates render the HTML bodies sent by the service. Every function is a
// pure function of its inputs; user-supplied values are escaped.

const layoutHeader = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`
const layoutFooter = `</div>`

// NewsletterHTML personalizes one newsletter body for a recipient,
// including their unsubscribe link.
func NewsletterHTML(subject, body, recipientEmail, frontendURL string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	fmt.Fprintf(&b, `<h2 style="color: #1e40af;">%s</h2>`, html.EscapeString(subject))
	fmt.Fprintf(&b, `<div style="white-space: pre-wrap;">%s</div>`, html.EscapeString(body))
	b.WriteString(`<hr style="margin: 30px 0;">`)
	fmt.Fprintf(&b, `<p style="font-size: 12px; color: #666;">You are receiving this email because you subscribed to our newsletter.<br><a href="%s/unsubscribe?email=%s">Unsubscribe</a></p>`,
		frontendURL, url.QueryEscape(recipientEmail))
	b.WriteString(layoutFooter)
	return b.String()
}

// SubscriberWelcome greets a new mailing-list member.
func SubscriberWelcome(email, frontendURL string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	b.WriteString(`<h2 style="color: #1e40af;">Welcome to our Newsletter</h2>`)
	b.WriteString(`<p>Thank you for subscribing. You will now receive updates about sermons, events and church life.</p>`)
	fmt.Fprintf(&b, `<p style="font-size: 12px; color: #666;"><a href="%s/unsubscribe?email=%s">Unsubscribe</a></p>`,
		frontendURL, url.QueryEscape(email))
	b.WriteString(layoutFooter)
	return b.String()
}

// ContactConfirmation acknowledges a contact-form submission to its sender.
func ContactConfirmation(name, message string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	fmt.Fprintf(&b, `<h2 style="color: #1e40af;">Thank you, %s</h2>`, html.EscapeString(name))
	b.WriteString(`<p>We have received your message and will get back to you soon.</p>`)
	fmt.Fprintf(&b, `<blockquote style="border-left: 3px solid #1e40af; padding-left: 12px; color: #444; white-space: pre-wrap;">%s</blockquote>`,
		html.EscapeString(message))
	b.WriteString(layoutFooter)
	return b.String()
}

// MessageReply carries an admin's response back to a contact-form sender,
// quoting their original message.
func MessageReply(name, reply, original string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	b.WriteString(`<h2 style="color: #1e40af;">Response to Your Message</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s,</p>`, html.EscapeString(name))
	fmt.Fprintf(&b, `<div style="white-space: pre-wrap;">%s</div>`, html.EscapeString(reply))
	b.WriteString(`<p>God bless you!</p>`)
	b.WriteString(`<hr style="margin: 30px 0;">`)
	fmt.Fprintf(&b, `<p style="font-size: 12px; color: #666;"><strong>Your Original Message:</strong><br><span style="white-space: pre-wrap;">%s</span></p>`,
		html.EscapeString(original))
	b.WriteString(layoutFooter)
	return b.String()
}

// ContactAdminNotification alerts the office about a new contact message.
func ContactAdminNotification(name, email, phone, subject, message string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	b.WriteString(`<h2 style="color: #1e40af;">New Contact Message</h2>`)
	fmt.Fprintf(&b, `<p><strong>From:</strong> %s &lt;%s&gt;</p>`, html.EscapeString(name), html.EscapeString(email))
	if phone != "" {
		fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, html.EscapeString(phone))
	}
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, html.EscapeString(subject))
	fmt.Fprintf(&b, `<div style="white-space: pre-wrap;">%s</div>`, html.EscapeString(message))
	b.WriteString(layoutFooter)
	return b.String()
}

// MinistryApplicationConfirmation acknowledges a join request.
func MinistryApplicationConfirmation(firstName, lastName, ministryLabel string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	fmt.Fprintf(&b, `<h2 style="color: #1e40af;">Application Received</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s %s,</p>`, html.EscapeString(firstName), html.EscapeString(lastName))
	fmt.Fprintf(&b, `<p>Thank you for applying to join the <strong>%s</strong> ministry. Our team will review your application and contact you shortly.</p>`,
		html.EscapeString(ministryLabel))
	b.WriteString(layoutFooter)
	return b.String()
}

// MinistryApplicationApproval notifies an applicant of approval.
func MinistryApplicationApproval(firstName, lastName, ministryLabel string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	b.WriteString(`<h2 style="color: #16a34a;">Application Approved</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s %s,</p>`, html.EscapeString(firstName), html.EscapeString(lastName))
	fmt.Fprintf(&b, `<p>Congratulations! Your application to join the <strong>%s</strong> ministry has been approved. A ministry leader will reach out with next steps.</p>`,
		html.EscapeString(ministryLabel))
	b.WriteString(layoutFooter)
	return b.String()
}

// MinistryApplicationDecline notifies an applicant of a decline.
func MinistryApplicationDecline(firstName, lastName, ministryLabel, reason string) string {
	var b strings.Builder
	b.WriteString(layoutHeader)
	b.WriteString(`<h2 style="color: #1e40af;">Application Update</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s %s,</p>`, html.EscapeString(firstName), html.EscapeString(lastName))
	fmt.Fprintf(&b, `<p>Thank you for your interest in the <strong>%s</strong> ministry. We are unable to approve your application at this time.</p>`,
		html.EscapeString(ministryLabel))
	if reason != "" {
		fmt.Fprintf(&b, `<p style="color: #444;">%s</p>`, html.EscapeString(reason))
	}
	b.WriteString(layoutFooter)
	return b.String()
}
