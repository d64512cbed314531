package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"sofa-shop/internal/model"
	"sofa-shop/internal/reference"
)

// statusCopy holds the per-status subject line and body paragraph of a
// status-update email.
type statusCopy struct {
	Title   string
	Message string
}

var statusTemplates = map[string]statusCopy{
	model.StatusConfirmed: {
		Title:   "Order Confirmed",
		Message: "Great news! Your order has been successfully confirmed. Our warehouse team is now preparing your items.",
	},
	model.StatusProcessing: {
		Title:   "Order Processing",
		Message: "Your furniture is currently being processed and prepared for dispatch. We ensure every piece meets our strict quality standards before it leaves.",
	},
	model.StatusShipped: {
		Title:   "Order Shipped!",
		Message: "Your order has left our warehouse and is on its way! Our delivery team will be in touch shortly to arrange a precise delivery time slot.",
	},
	model.StatusDelivered: {
		Title:   "Order Delivered",
		Message: "Your new furniture has been delivered. We hope it looks perfect in your home! If you have a moment, we would love to hear your feedback on our website.",
	},
	model.StatusCancelled: {
		Title:   "Order Cancelled",
		Message: "Your order has been cancelled. If you have any questions, wish to reinstate this order, or believe this was an error, please contact our support team.",
	},
}

// copyForStatus returns the email copy for a status, with a generic
// fallback for anything unrecognised.
func copyForStatus(status string) statusCopy {
	if c, ok := statusTemplates[status]; ok {
		return c
	}
	return statusCopy{
		Title:   "Order Status Updated",
		Message: "There has been an update to your order.",
	}
}

// wrapHTML applies the brand wrapper shared by every outgoing email.
func wrapHTML(shopName, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="background-color:#f5f5f4;font-family:Helvetica,Arial,sans-serif;padding:20px;margin:0;color:#1c1917;">
  <div style="max-width:600px;margin:0 auto;background-color:#ffffff;border-radius:12px;overflow:hidden;">
    <div style="background-color:#1c1917;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:28px;font-weight:800;">%s</h1>
    </div>
    <div style="padding:32px 24px;">
%s
    </div>
    <div style="background-color:#fafaf9;padding:24px;text-align:center;border-top:1px solid #e7e5e4;">
      <p style="margin:0;color:#78716c;font-size:13px;">Need help? Reply to this email.</p>
      <p style="margin:10px 0 0 0;color:#a8a29e;font-size:12px;">&copy; %d %s. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`, html.EscapeString(shopName), content, time.Now().Year(), html.EscapeString(shopName))
}

// confirmationEmail builds the subject and HTML body of the
// order-confirmation-request message. The confirm link carries the full
// order key; the visible reference is the short code.
func confirmationEmail(shopName, siteURL string, order *model.Order) (subject, body string) {
	code := reference.FromOrderID(order.ID)
	confirmLink := fmt.Sprintf("%s/confirm-order/%s", strings.TrimRight(siteURL, "/"), order.ID)

	subject = fmt.Sprintf("Action Required: Confirm Your Order - (#%s)", code)
	content := fmt.Sprintf(`
      <h2 style="margin-top:0;font-size:24px;">Almost there, %s!</h2>
      <p style="color:#57534e;line-height:1.6;">We have received your Cash on Delivery request. To proceed with your order, we need you to quickly verify your details.</p>
      <div style="background-color:#fafaf9;border:1px solid #e7e5e4;padding:24px;border-radius:12px;margin:32px 0;">
        <p style="margin:0;color:#78716c;font-size:12px;text-transform:uppercase;">Order Reference</p>
        <p style="margin:5px 0 24px 0;font-size:28px;font-weight:bold;font-family:monospace;">%s</p>
        <p style="margin:0;color:#78716c;font-size:12px;text-transform:uppercase;">Total to Pay on Delivery</p>
        <p style="margin:5px 0 0 0;font-size:28px;font-weight:bold;color:#d97706;">&pound;%.2f</p>
      </div>
      <a href="%s" style="background-color:#1c1917;color:#ffffff;padding:16px 36px;text-decoration:none;border-radius:8px;font-weight:bold;display:inline-block;">Review &amp; Confirm Order</a>
      <p style="margin-top:32px;font-size:13px;color:#a8a29e;">If you did not place this order, no further action is required and you can safely ignore this email.</p>`,
		html.EscapeString(order.CustomerName), code, order.TotalAmount, confirmLink)

	return subject, wrapHTML(shopName, content)
}

// statusEmail builds the subject and HTML body of a status-changed message.
// Terminal statuses omit the tracking link.
func statusEmail(shopName, siteURL string, order *model.Order, status string) (subject, body string) {
	code := reference.FromOrderID(order.ID)
	c := copyForStatus(status)

	subject = fmt.Sprintf("%s - (#%s)", c.Title, code)
	var trackBlock string
	if status != model.StatusCancelled && status != model.StatusDelivered {
		trackLink := fmt.Sprintf("%s/track-order?code=%s", strings.TrimRight(siteURL, "/"), code)
		trackBlock = fmt.Sprintf(`
      <a href="%s" style="background-color:#1c1917;color:#ffffff;padding:14px 28px;text-decoration:none;border-radius:8px;font-weight:bold;display:inline-block;">Track Your Order</a>`, trackLink)
	}

	content := fmt.Sprintf(`
      <h2 style="margin-top:0;font-size:22px;">Hi %s,</h2>
      <p style="color:#57534e;line-height:1.6;">%s</p>
      <div style="background-color:#fafaf9;border-left:4px solid #d97706;padding:16px 20px;margin:24px 0;">
        <p style="margin:0;color:#78716c;font-size:13px;text-transform:uppercase;">Order Reference</p>
        <p style="margin:4px 0 0 0;font-size:20px;font-weight:bold;font-family:monospace;">%s</p>
      </div>%s`,
		html.EscapeString(order.CustomerName), c.Message, code, trackBlock)

	return subject, wrapHTML(shopName, content)
}

// contactEmail builds the subject and HTML body of a contact-form relay.
func contactEmail(shopName string, req *model.ContactRequest) (subject, body string) {
	name := strings.TrimSpace(req.FirstName + " " + req.LastName)
	orderRef := req.OrderReference
	if orderRef == "" {
		orderRef = "Not provided"
	}

	subject = fmt.Sprintf("Support Request: %s", name)
	if req.OrderReference != "" {
		subject = fmt.Sprintf("Support Request: %s (#%s)", name, req.OrderReference)
	}

	content := fmt.Sprintf(`
      <h2 style="color:#d97706;margin-top:0;">New Customer Inquiry</h2>
      <table style="width:100%%;border-collapse:collapse;margin:24px 0;">
        <tr><td style="padding:12px 0;color:#78716c;width:120px;"><strong>Name:</strong></td><td style="padding:12px 0;font-weight:bold;">%s</td></tr>
        <tr><td style="padding:12px 0;color:#78716c;"><strong>Email:</strong></td><td style="padding:12px 0;">%s</td></tr>
        <tr><td style="padding:12px 0;color:#78716c;"><strong>Order Ref:</strong></td><td style="padding:12px 0;font-family:monospace;">%s</td></tr>
      </table>
      <h3 style="margin-top:32px;font-size:16px;">Message:</h3>
      <div style="background-color:#f5f5f4;padding:20px;border-radius:8px;color:#57534e;white-space:pre-wrap;line-height:1.6;">%s</div>`,
		html.EscapeString(name), html.EscapeString(req.Email),
		html.EscapeString(orderRef), html.EscapeString(req.Message))

	return subject, wrapHTML(shopName, content)
}
