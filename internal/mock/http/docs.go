package http

import (
	"io"
	"net/http"
	"sync"

	"github.com/rohanthewiz/element"
)

// DocsHandler serves GET /: a static HTML page describing the real Warp
// Development API alongside this mock's local endpoints. No auth, no dynamic
// content.
type DocsHandler struct{}

var docsPage = sync.OnceValue(renderDocsPage)

func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, docsPage())
}

const docsCSS = `
body { font-family: Arial, sans-serif; margin: 40px; background: #1e1e1e; color: #d4d4d4; }
.endpoint { margin: 20px 0; padding: 15px; background: #2d2d30; border-radius: 5px; }
.method { color: #4ec9b0; font-weight: bold; }
.url { color: #9cdcfe; }
.note { color: #608b4e; font-style: italic; }
.sample { background: #0d1117; padding: 10px; border-radius: 3px; white-space: pre; font-family: monospace; overflow-x: auto; }
h1 { color: #569cd6; }
h2 { color: #4ec9b0; }
`

const loginSample = `{
  "Email": "email@email.com",
  "Password": "Password123"
}`

const entrySample = `{
  "Comments": "this is a entry",
  "EntryDate": "2019-09-01",
  "Time": 8,
  "Overtime": 0,
  "Person": {"PersonId": 123},
  "Task": {"TaskId": 123},
  "CostCodeId": 1
}`

func renderDocsPage() string {
	const remote = "https://office.warpdevelopment.com"

	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Title().T("Warp Development API Test Server"),
			b.Style().T(docsCSS),
		),
		b.Body().R(
			b.H1().T("Warp Development API Test Server"),
			b.P("class", "note").T("Mock endpoints for local development against the office timesheet API."),

			b.Div("class", "endpoint").R(
				b.H2().T("Login"),
				b.P().R(
					b.Span("class", "method").T("POST "),
					b.Span("class", "url").T(remote+"/api/account/Authorise"),
				),
				b.Div("class", "sample").T(loginSample),
			),

			b.Div("class", "endpoint").R(
				b.H2().T("List Customers"),
				b.P().R(
					b.Span("class", "method").T("GET "),
					b.Span("class", "url").T(remote+"/api/client/list"),
				),
			),

			b.Div("class", "endpoint").R(
				b.H2().T("List Projects By Customer"),
				b.P().R(
					b.Span("class", "method").T("GET "),
					b.Span("class", "url").T(remote+"/api/project/client/{clientId}"),
				),
			),

			b.Div("class", "endpoint").R(
				b.H2().T("Make Entry"),
				b.P().R(
					b.Span("class", "method").T("POST "),
					b.Span("class", "url").T(remote+"/api/entry/create"),
				),
				b.Div("class", "sample").T(entrySample),
			),

			b.H2().T("Test Endpoints (Local)"),
			b.P().T("This server provides mock responses for the endpoints above. "+
				"Use POST /api/account/Authorise to get a bearer token, then send it "+
				"as \"Authorization: Bearer {token}\" on the protected endpoints."),
			b.Div("class", "endpoint").R(
				b.P().T("POST /api/account/Authorise - Mock login (accepts any credentials, returns bearer token)"),
				b.P().T("GET /api/client/list - Mock customer list (requires bearer token)"),
				b.P().T("GET /api/project/client/{clientId} - Mock project list for a customer (requires bearer token)"),
				b.P().T("POST /api/entry/create - Mock entry creation (requires bearer token)"),
			),
		),
	)

	return "<!DOCTYPE html>\n" + b.String()
}
