package email

import (
	"bytes"
	"html/template"
)

const verificationSubject = "Verifique seu e-mail – Fixnow"

var verificationTemplate = template.Must(template.New("verification").Parse(`
<div style="font-family:Arial,sans-serif;font-size:15px">
  <p>Olá! Clique no botão abaixo para confirmar seu e-mail na Fixnow:</p>
  <p>
    <a href="{{.Link}}" style="display:inline-block;background:#2563eb;color:#fff;padding:12px 18px;border-radius:8px;text-decoration:none">
      Verificar e-mail
    </a>
  </p>
  <p>Ou copie e cole este link no navegador:<br/><a href="{{.Link}}">{{.Link}}</a></p>
  <p>Se você não solicitou, ignore este e-mail.</p>
</div>
`))

func renderVerification(link string) (string, error) {
	var buf bytes.Buffer
	err := verificationTemplate.Execute(&buf, struct{ Link string }{Link: link})
	return buf.String(), err
}
