package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocaleLayout(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "1/2/2006, 3:04:05 PM"},
		{"en-GB", "02/01/2006, 15:04:05"},
		{"de-DE", "2.1.2006, 15:04:05"},
		{"ja-JP", "2006/1/2 15:04:05"},
		{"", "1/2/2006, 3:04:05 PM"},
		{"not a locale!", "1/2/2006, 3:04:05 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, LocaleLayout(tt.locale))
		})
	}
}

func TestLocaleFormatter(t *testing.T) {
	at := time.Date(2026, time.March, 4, 17, 5, 9, 0, time.UTC)

	assert.Equal(t, "3/4/2026, 5:05:09 PM", LocaleFormatter("en-US", time.UTC)(at))
	assert.Equal(t, "4.3.2026, 17:05:09", LocaleFormatter("de-DE", time.UTC)(at))
}

func TestLocaleFormatter_ConvertsZone(t *testing.T) {
	at := time.Date(2026, time.March, 4, 23, 0, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "2026/3/5 08:00:00", LocaleFormatter("ja-JP", tokyo)(at))
}
