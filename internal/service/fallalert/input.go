package fallalert

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/domain"
)

// IngestInput is a fall report from the detection camera.
type IngestInput struct {
	UserID     string
	Timestamp  string
	Confidence *float64
	ImageURL   *string
	FallType   *string

	// malformed lists fields whose JSON type could not be used.
	malformed []string
}

// ingestAliases maps canonical field names to the keys accepted on the wire.
// The camera client has shipped both spellings.
var ingestAliases = map[string][]string{
	"user_id":   {"userId", "user_id"},
	"timestamp": {"timestamp"},
	"image_url": {"imageUrl", "image_url"},
	"fall_type": {"fallType", "fall_type"},
}

// NormalizeIngestPayload maps a decoded JSON body onto IngestInput. For
// aliased fields the first non-empty spelling wins.
func NormalizeIngestPayload(body map[string]any) IngestInput {
	var in IngestInput

	in.UserID = in.stringField(body, "user_id")
	in.Timestamp = in.timestampField(body)
	in.ImageURL = nilIfEmpty(in.stringField(body, "image_url"))
	in.FallType = nilIfEmpty(in.stringField(body, "fall_type"))

	if raw, ok := body["confidence"]; ok && raw != nil {
		f, ok := toFloat(raw)
		if ok {
			in.Confidence = &f
		} else {
			in.malformed = append(in.malformed, "confidence")
		}
	}

	return in
}

func (in *IngestInput) stringField(body map[string]any, field string) string {
	for _, key := range ingestAliases[field] {
		raw, ok := body[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		default:
			in.malformed = append(in.malformed, field)
			return ""
		}
	}
	return ""
}

// timestampField accepts a string or unix seconds.
func (in *IngestInput) timestampField(body map[string]any) string {
	raw, ok := body["timestamp"]
	if !ok || raw == nil {
		return ""
	}
	if f, ok := toFloat(raw); ok {
		if _, isString := raw.(string); !isString {
			sec := int64(f)
			nsec := int64((f - float64(sec)) * 1e9)
			return time.Unix(sec, nsec).UTC().Format(time.RFC3339Nano)
		}
	}
	return in.stringField(body, "timestamp")
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Validate checks all fields and collects all errors.
func (i IngestInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range i.malformed {
		errs = append(errs, domain.FieldError{Field: f, Message: domain.MsgInvalidFormat})
	}

	switch {
	case i.UserID == "":
		errs = append(errs, domain.FieldError{Field: "userId", Message: domain.MsgMissingRequiredField})
	default:
		if _, err := uuid.Parse(i.UserID); err != nil {
			errs = append(errs, domain.FieldError{Field: "userId", Message: domain.MsgInvalidFormat})
		}
	}

	switch {
	case i.Timestamp == "":
		errs = append(errs, domain.FieldError{Field: "timestamp", Message: domain.MsgMissingRequiredField})
	default:
		if _, err := parseTimestamp(i.Timestamp, time.UTC); err != nil {
			errs = append(errs, domain.FieldError{Field: "timestamp", Message: domain.MsgInvalidFormat})
		}
	}

	if i.Confidence != nil && (*i.Confidence < 0 || *i.Confidence > 1) {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: domain.MsgOutOfRange})
	}

	if i.ImageURL != nil && len(*i.ImageURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "max 2048 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// timestampLayouts are tried in order. Layouts without a zone are read in
// the service location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ListInput holds the parameters for listing fall alerts.
type ListInput struct {
	Acknowledged *bool
	UserID       *uuid.UUID
	Limit        int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
