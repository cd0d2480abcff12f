// Package esewa builds signed eSewa ePay v2 form payloads and verifies
// the data eSewa sends back to the success url.
package esewa

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	StatusComplete = "COMPLETE"

	requestSignedFields = "total_amount,transaction_uuid,product_code"
)

var (
	ErrBadSignature = errors.New("esewa: signature mismatch")
	ErrBadPayload   = errors.New("esewa: malformed callback payload")
)

type Config struct {
	URL         string
	ProductCode string
	SecretKey   string
	SuccessURL  string
	FailureURL  string
}

// Redirect is what the browser needs to hand control to eSewa.
type Redirect struct {
	URL      string            `json:"esewaUrl"`
	FormData map[string]string `json:"formData"`
}

// Callback is the decoded, verified payload eSewa appends to success_url.
type Callback struct {
	TransactionCode string `json:"transaction_code"`
	Status          string `json:"status"`
	TotalAmount     string `json:"total_amount"`
	TransactionUUID string `json:"transaction_uuid"`
	ProductCode     string `json:"product_code"`
	SignedFields    string `json:"signed_field_names"`
	Signature       string `json:"signature"`
}

func (c Callback) Complete() bool {
	return c.Status == StatusComplete
}

// Amount parses total_amount, which eSewa may send as "1,500.0".
func (c Callback) Amount() (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(c.TotalAmount, ",", ""), 64)
}

type Gateway struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Gateway {
	return &Gateway{cfg: cfg, now: time.Now}
}

// TransactionUUID derives the merchant transaction id for a booking.
// eSewa only accepts alphanumerics and hyphens here.
func (g *Gateway) TransactionUUID(bookingID string) string {
	return bookingID + "-" + g.now().UTC().Format("060102150405")
}

// Initiate signs a payment request of amount for the given transaction.
func (g *Gateway) Initiate(transactionUUID string, amount int) Redirect {
	total := strconv.Itoa(amount)

	fields := map[string]string{
		"amount":                  total,
		"tax_amount":              "0",
		"total_amount":            total,
		"transaction_uuid":        transactionUUID,
		"product_code":            g.cfg.ProductCode,
		"product_service_charge":  "0",
		"product_delivery_charge": "0",
		"success_url":             g.cfg.SuccessURL,
		"failure_url":             g.cfg.FailureURL,
		"signed_field_names":      requestSignedFields,
	}
	fields["signature"] = g.sign(message(fields, requestSignedFields))

	return Redirect{URL: g.cfg.URL, FormData: fields}
}

// VerifyCallback decodes the base64 "data" query value and checks its
// signature over the fields it claims to have signed.
func (g *Gateway) VerifyCallback(data string) (Callback, error) {
	const op = "esewa.VerifyCallback"

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Callback{}, fmt.Errorf("%s: %w", op, ErrBadPayload)
	}

	var values map[string]any
	if err = json.Unmarshal(raw, &values); err != nil {
		return Callback{}, fmt.Errorf("%s: %w", op, ErrBadPayload)
	}

	fields := make(map[string]string, len(values))
	for k, v := range values {
		fields[k] = stringify(v)
	}

	signed := fields["signed_field_names"]
	if signed == "" || fields["signature"] == "" {
		return Callback{}, fmt.Errorf("%s: %w", op, ErrBadPayload)
	}

	want := g.sign(message(fields, signed))
	if !hmac.Equal([]byte(want), []byte(fields["signature"])) {
		return Callback{}, fmt.Errorf("%s: %w", op, ErrBadSignature)
	}

	if fields["product_code"] != g.cfg.ProductCode {
		return Callback{}, fmt.Errorf("%s: unexpected product code %q", op, fields["product_code"])
	}

	return Callback{
		TransactionCode: fields["transaction_code"],
		Status:          fields["status"],
		TotalAmount:     fields["total_amount"],
		TransactionUUID: fields["transaction_uuid"],
		ProductCode:     fields["product_code"],
		SignedFields:    signed,
		Signature:       fields["signature"],
	}, nil
}

// Sign is exposed for tests and tools that need to fake gateway payloads.
func (g *Gateway) Sign(fields map[string]string) string {
	return g.sign(message(fields, fields["signed_field_names"]))
}

func (g *Gateway) sign(msg string) string {
	mac := hmac.New(sha256.New, []byte(g.cfg.SecretKey))
	mac.Write([]byte(msg))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func message(fields map[string]string, signed string) string {
	names := strings.Split(signed, ",")
	parts := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		parts = append(parts, name+"="+fields[name])
	}

	return strings.Join(parts, ",")
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
