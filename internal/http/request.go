package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"github.com/GiannisClipper/payments/internal/service"
	"github.com/GiannisClipper/payments/internal/validate"
)

const bodyNotValid = "Request body is not valid."

// bindEnvelope reads the request body, checks it against the entity's
// envelope schema and returns the entity object, empty when the key is
// missing. Field presence is preserved: an explicit null stays in the
// map, so inputs can distinguish "clear this field" from "not sent".
func (s *Server) bindEnvelope(c *gin.Context, name string) (map[string]any, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.respondErrors(c, http.StatusBadRequest, bodyNotValid)
		return nil, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	result, err := s.schemas[name].Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		s.respondErrors(c, http.StatusBadRequest, bodyNotValid)
		return nil, false
	}
	if !result.Valid() {
		errs := validate.Errors{}
		for _, e := range result.Errors() {
			errs.Add(e.Field(), e.Description()+".")
		}
		s.respondErrors(c, http.StatusBadRequest, errs)
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		s.respondErrors(c, http.StatusBadRequest, bodyNotValid)
		return nil, false
	}

	entity, _ := payload[name].(map[string]any)
	if entity == nil {
		entity = map[string]any{}
	}
	return entity, true
}

// Optional-field readers: absent key -> nil; explicit null -> pointer to
// the zero value, which clears the field downstream.

func optString(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	s, _ := v.(string)
	return &s
}

func optBool(m map[string]any, key string) *bool {
	v, ok := m[key]
	if !ok {
		return nil
	}
	b, _ := v.(bool)
	return &b
}

func optNumber(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	f, _ := v.(float64)
	return &f
}

// optRef reads a reference either as a bare id or as an object with an
// "id" member, the two shapes clients send.
func optRef(m map[string]any, key string) *uint {
	v, ok := m[key]
	if !ok {
		return nil
	}
	id := refID(v)
	return &id
}

func refID(v any) uint {
	switch t := v.(type) {
	case float64:
		return uint(t)
	case map[string]any:
		if id, ok := t["id"].(float64); ok {
			return uint(id)
		}
	}
	return 0
}

// optDate parses a present date. A non-empty string that matches no
// accepted layout records a not-valid error instead of silently reading
// as missing.
func optDate(m map[string]any, key string, errs validate.Errors) *time.Time {
	v, ok := m[key]
	if !ok {
		return nil
	}
	var d time.Time
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		parsed, err := parseDate(strings.TrimSpace(s))
		if err != nil {
			errs.Add(key, validate.NotValidMsg(key))
		} else {
			d = parsed
		}
	}
	return &d
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range []string{dateLayout, "02-01-2006"} {
		var d time.Time
		if d, err = time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, err
}

// optFundRef keeps the null/absent distinction for Genre's nullable fund.
func optFundRef(m map[string]any) *service.RefValue {
	v, ok := m["fund"]
	if !ok {
		return nil
	}
	if v == nil {
		return &service.RefValue{}
	}
	id := refID(v)
	return &service.RefValue{ID: &id}
}

func fundInput(m map[string]any) service.FundInput {
	return service.FundInput{
		User: optRef(m, "user"),
		Code: optString(m, "code"),
		Name: optString(m, "name"),
	}
}

func genreInput(m map[string]any) service.GenreInput {
	return service.GenreInput{
		User:       optRef(m, "user"),
		Code:       optString(m, "code"),
		Name:       optString(m, "name"),
		IsIncoming: optBool(m, "is_incoming"),
		Fund:       optFundRef(m),
	}
}

func paymentInput(m map[string]any) (service.PaymentInput, validate.Errors) {
	errs := validate.Errors{}
	in := service.PaymentInput{
		User:     optRef(m, "user"),
		Date:     optDate(m, "date", errs),
		Genre:    optRef(m, "genre"),
		Fund:     optRef(m, "fund"),
		Incoming: optNumber(m, "incoming"),
		Outgoing: optNumber(m, "outgoing"),
		Remarks:  optString(m, "remarks"),
	}
	return in, errs
}

func userInput(m map[string]any) service.UserInput {
	return service.UserInput{
		Username:  optString(m, "username"),
		Email:     optString(m, "email"),
		Password:  optString(m, "password"),
		Password2: optString(m, "password2"),
		IsActive:  optBool(m, "is_active"),
		IsStaff:   optBool(m, "is_admin"),
	}
}
