// internal/workers/communication/send-skill-plan/templates.go

package sendskillplan

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"career-workers/internal/models"
)

type planData struct {
	TargetCareer string
	Skills       []models.SkillPriority
}

func inc(i int) int { return i + 1 }

var (
	subjectTemplate = template.Must(template.New("subject").Parse(
		`Your skill plan{{if .TargetCareer}} for {{.TargetCareer}}{{end}}`))

	textTemplate = template.Must(template.New("text").Funcs(template.FuncMap{"inc": inc}).Parse(
		`Here are the skills to focus on next{{if .TargetCareer}} for {{.TargetCareer}}{{end}}:
{{range $i, $s := .Skills}}
{{inc $i}}. {{$s.Skill}} ({{$s.Category}}, effort: {{$s.LearningEffort}})
{{- end}}
`))

	htmlTemplate = htmltemplate.Must(htmltemplate.New("html").Parse(
		`<p>Here are the skills to focus on next{{if .TargetCareer}} for <strong>{{.TargetCareer}}</strong>{{end}}:</p>
<ol>{{range .Skills}}<li>{{.Skill}} <em>({{.Category}}, effort: {{.LearningEffort}})</em></li>{{end}}</ol>`))
)

func renderEmail(data planData) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err = subjectTemplate.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	subject = buf.String()

	buf.Reset()
	if err = textTemplate.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	text = buf.String()

	buf.Reset()
	if err = htmlTemplate.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}

// smsText names at most three skills so the summary fits one segment.
func smsText(data planData) string {
	names := make([]string, 0, 3)
	for i, s := range data.Skills {
		if i == 3 {
			break
		}
		names = append(names, s.Skill)
	}
	msg := "Next skills to learn: " + strings.Join(names, ", ")
	if len(data.Skills) > 3 {
		msg += " and more. Full plan sent by e-mail."
	}
	return msg
}
