package usecase

const enquiryHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #1d4ed8; color: #fff; padding: 20px; border-radius: 8px 8px 0 0; }
.content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
.footer { background: #374151; color: #fff; padding: 15px; border-radius: 0 0 8px 8px; text-align: center; }
.field { margin-bottom: 15px; }
.label { font-weight: bold; color: #2563eb; }
.value { margin-top: 5px; white-space: pre-line; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h2>New Enquiry - {{.Brand}}</h2></div>
  <div class="content">
    <div class="field" id="name"><div class="label">Name:</div><div class="value">{{.Name}}</div></div>
    <div class="field" id="email"><div class="label">Email:</div><div class="value">{{.Email}}</div></div>
    <div class="field" id="phone"><div class="label">Phone:</div><div class="value">{{.Phone}}</div></div>
    <div class="field" id="company"><div class="label">Company:</div><div class="value">{{.Company}}</div></div>
    <div class="field" id="products"><div class="label">Products Interested In:</div><div class="value">{{.Products}}</div></div>
    <div class="field" id="message"><div class="label">Message:</div><div class="value">{{.Message}}</div></div>
  </div>
  <div class="footer">
    <p>This enquiry was submitted from the {{.Brand}} website on {{.SubmittedAt}}</p>
    <p>Reference: <span id="reference">{{.Reference}}</span></p>
  </div>
</div>
</body>
</html>
`

const enquiryText = `NEW ENQUIRY - {{.Brand}}
=====================================

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Company: {{.Company}}
Products Interested In: {{.Products}}

Message:
{{.Message}}

=====================================
Submitted: {{.SubmittedAt}}
Reference: {{.Reference}}
`

type mailView struct {
	Brand       string
	Reference   string
	Name        string
	Email       string
	Phone       string
	Company     string
	Products    string
	Message     string
	SubmittedAt string
}
