package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		in      string
		want    LanguageCode
		wantErr bool
	}{
		{in: "en", want: LanguageEnglish},
		{in: " EN ", want: LanguageEnglish},
		{in: "pt_BR", want: LanguagePortuguese},
		{in: "zh-Hant", want: LanguageChinese},
		{in: "es-419", want: LanguageSpanish},
		{in: "", wantErr: true},
		{in: "nl", wantErr: true},
		{in: "not a language", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguageCode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguages(t *testing.T) {
	languages := Languages()
	require.Len(t, languages, len(SupportedLanguages))
	assert.Equal(t, LanguageEnglish, languages[0].Code)
	assert.Equal(t, "English", languages[0].Name)
	for _, l := range languages {
		assert.True(t, l.Code.IsValid())
		assert.NotEmpty(t, l.NativeName, l.Code)
	}
	assert.False(t, LanguageCode("xx").IsValid())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("active").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStringList(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	var l StringList
	require.NoError(t, l.Scan([]byte(`["billing","login"]`)))
	assert.Equal(t, StringList{"billing", "login"}, l)

	assert.Error(t, l.Scan(42))
}

func TestFileDataRoundTripsThroughColumn(t *testing.T) {
	in := FileData{
		ID:       "assets/logos/categories/a.png",
		Storage:  "s3",
		Metadata: FileMetadata{Filename: "a.png", MimeType: "image/png", Size: 10},
		URLs:     FileURLs{Original: "http://localhost:9000/faq-assets/assets/logos/categories/a.png"},
	}
	v, err := in.Value()
	require.NoError(t, err)

	var out FileData
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)

	var empty FileData
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, FileData{}, empty)
}

func TestJSON(t *testing.T) {
	assert.Nil(t, NewJSON(nil))

	doc := NewJSON(map[string]int{"order": 2})
	assert.JSONEq(t, `{"order":2}`, string(doc))

	wrapped, err := json.Marshal(struct {
		Old JSON `json:"old"`
		New JSON `json:"new"`
	}{New: doc})
	require.NoError(t, err)
	assert.JSONEq(t, `{"old":null,"new":{"order":2}}`, string(wrapped))

	v, err := JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var scanned JSON
	require.NoError(t, scanned.Scan(`{"a":1}`))
	assert.JSONEq(t, `{"a":1}`, string(scanned))
}

func TestFAQFilterPaginated(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
	}{
		{"defaults", 0, 0, 1, DefaultPageLimit},
		{"negative", -3, -1, 1, DefaultPageLimit},
		{"kept", 4, 50, 4, 50},
		{"clamped", 2, 500, 2, MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FAQFilter{CategoryID: "cat-1", Page: tt.page, Limit: tt.limit}.Paginated()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, "cat-1", got.CategoryID)
		})
	}
}
