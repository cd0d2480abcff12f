// Package redirect describes the POST that hands the user over to the
// payment gateway, plus adapters that perform it.
package redirect

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Request is a form POST to URL carrying Fields.
type Request struct {
	Method string
	URL    string
	Fields map[string]string
}

// Build copies fields so later changes to the caller's map do not leak in.
func Build(target string, fields map[string]string) Request {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}

	return Request{Method: http.MethodPost, URL: target, Fields: copied}
}

// Names returns the field names in a stable order.
func (r Request) Names() []string {
	names := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

func (r Request) Encode() string {
	values := make(url.Values, len(r.Fields))
	for k, v := range r.Fields {
		values.Set(k, v)
	}

	return values.Encode()
}

var page = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.forms[0].submit()">
<form method="{{.Method}}" action="{{.URL}}">
{{- range .Inputs}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

type input struct {
	Name  string
	Value string
}

// RenderHTML writes a page whose form submits itself on load, one hidden
// input per field.
func RenderHTML(w io.Writer, r Request) error {
	inputs := make([]input, 0, len(r.Fields))
	for _, name := range r.Names() {
		inputs = append(inputs, input{Name: name, Value: r.Fields[name]})
	}

	return page.Execute(w, struct {
		Method string
		URL    string
		Inputs []input
	}{r.Method, r.URL, inputs})
}

// Submit performs the POST directly. The gateway answers with its own
// redirect, which client follows or not depending on its CheckRedirect.
func Submit(ctx context.Context, client *http.Client, r Request) (*http.Response, error) {
	const op = "redirect.Submit"

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, strings.NewReader(r.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

// Page is a redirector that writes the auto-submitting page to W.
type Page struct {
	W io.Writer
}

func (p Page) Redirect(_ context.Context, r Request) error {
	return RenderHTML(p.W, r)
}

// Poster is a redirector that posts the form itself, for callers
// without a browser.
type Poster struct {
	Client *http.Client
}

func (p Poster) Redirect(ctx context.Context, r Request) error {
	resp, err := Submit(ctx, p.Client, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("gateway answered %s", resp.Status)
	}

	return nil
}
