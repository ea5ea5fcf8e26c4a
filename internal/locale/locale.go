// Package locale provides a best-effort language hint from the caller's IP.
// The lookup is an external call with a short timeout and a configured
// fallback; it is never on the path of any journal operation.
package locale

import (
	"context"
	"strings"
	"time"

	"shukran/internal/cache"

	"github.com/go-resty/resty/v2"
)

// Supported languages, matching the client's translation dictionaries.
const (
	LangEN = "en"
	LangTR = "tr"
	LangES = "es"
	LangFR = "fr"
)

// countryLang maps ISO country codes to a supported language.
var countryLang = map[string]string{
	"TR": LangTR,
	"ES": LangES, "MX": LangES, "AR": LangES, "CO": LangES, "CL": LangES, "PE": LangES,
	"FR": LangFR, "BE": LangFR, "SN": LangFR, "CI": LangFR,
}

// Detector resolves a language hint for an IP address.
type Detector struct {
	client      *resty.Client
	endpoint    string
	defaultLang string
}

// geoResponse is the subset of the geo-IP payload we read.
type geoResponse struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// NewDetector creates a Detector against the given geo-IP endpoint.
func NewDetector(endpoint, defaultLang string) *Detector {
	if defaultLang == "" {
		defaultLang = LangEN
	}
	client := resty.New().
		SetTimeout(2 * time.Second).
		SetRetryCount(0)
	return &Detector{
		client:      client,
		endpoint:    endpoint,
		defaultLang: defaultLang,
	}
}

// Detect returns the language hint for ip. Any failure (timeout, bad payload,
// unknown country) degrades to the configured default; the result for an IP
// is cached since geolocation rarely changes.
func (d *Detector) Detect(ctx context.Context, ip string) string {
	if ip == "" {
		return d.defaultLang
	}

	var lang string
	key := cache.LocaleKey(ip)
	if found, err := cache.GetJSON(ctx, key, &lang); err == nil && found && lang != "" {
		return lang
	}

	var geo geoResponse
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("ip", ip).
		SetResult(&geo).
		Get(d.endpoint)
	if err != nil || !resp.IsSuccess() {
		return d.defaultLang
	}

	lang = d.defaultLang
	if mapped, ok := countryLang[strings.ToUpper(geo.CountryCode)]; ok {
		lang = mapped
	}

	_ = cache.SetJSON(ctx, key, lang, cache.LocaleTTL)
	return lang
}

// Default returns the configured fallback language.
func (d *Detector) Default() string {
	return d.defaultLang
}
