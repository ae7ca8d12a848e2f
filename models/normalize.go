package models

import (
	"encoding/json"
	"strings"
)

// KeywordsInput is loosely-typed keyword input as clients actually send it:
// either a list of strings or a single comma-delimited string. The zero value
// normalizes to an empty list.
type KeywordsInput struct {
	list   []string
	single string
	isList bool
}

// KeywordList wraps an already-split keyword list.
func KeywordList(values ...string) KeywordsInput {
	return KeywordsInput{list: values, isList: true}
}

// KeywordString wraps a comma-delimited keyword string.
func KeywordString(value string) KeywordsInput {
	return KeywordsInput{single: value}
}

func (in *KeywordsInput) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*in = KeywordList(list...)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*in = KeywordString(single)
	return nil
}

func (in KeywordsInput) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(NormalizeKeywords(in)))
}

// NormalizeKeywords converts keyword input into the canonical stored form:
// every entry trimmed, blank entries dropped, input order preserved.
// Duplicates are intentionally kept.
func NormalizeKeywords(in KeywordsInput) Keywords {
	list := in.list
	if !in.isList {
		list = strings.Split(in.single, ",")
	}
	out := Keywords{}
	for _, keyword := range list {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			out = append(out, keyword)
		}
	}
	return out
}

// ProjectUpdate is a partial project payload. A nil field was omitted by the
// caller; a non-nil pointer to an empty string was explicitly provided. Only
// the four string fields and keywords are updatable.
type ProjectUpdate struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Img         *string        `json:"img"`
	Link        *string        `json:"link"`
	Keywords    *KeywordsInput `json:"keywords"`
}

// ApplyTo merges the fields present in the update onto the current row.
// Provided strings are trimmed; keywords are re-normalized only when the
// caller supplied them, otherwise the current list is kept as is.
func (u ProjectUpdate) ApplyTo(current Project) Project {
	next := current
	if u.Title != nil {
		next.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		next.Description = strings.TrimSpace(*u.Description)
	}
	if u.Img != nil {
		next.Img = strings.TrimSpace(*u.Img)
	}
	if u.Link != nil {
		next.Link = strings.TrimSpace(*u.Link)
	}
	if u.Keywords != nil {
		next.Keywords = NormalizeKeywords(*u.Keywords)
	}
	return next
}
