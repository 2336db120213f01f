package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

// TemplateWelcome is sent after registration; it carries the password
// reset link for the freshly created account.
const TemplateWelcome = "welcome"

const welcomeSubject = "Welcome to the blog"

const welcomeText = `Hi {{.Name}},

Your account was created successfully. Set your password using the link below:

{{.ResetURL}}

If you did not register, you can ignore this message.
`

const welcomeHTML = `<p>Hi {{.Name}},</p>
<p>Your account was created successfully. Set your password using the link below:</p>
<p><a href="{{.ResetURL}}">{{.ResetURL}}</a></p>
<p>If you did not register, you can ignore this message.</p>
`

var (
	welcomeTextTpl = texttpl.Must(texttpl.New("welcome_text").Parse(welcomeText))
	welcomeHTMLTpl = htmpl.Must(htmpl.New("welcome_html").Parse(welcomeHTML))
)

// Render resolves a template name and data into subject, text and HTML
// bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var tb, hb bytes.Buffer
		if err = welcomeTextTpl.Execute(&tb, data); err != nil {
			return
		}
		if err = welcomeHTMLTpl.Execute(&hb, data); err != nil {
			return
		}
		return welcomeSubject, tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
