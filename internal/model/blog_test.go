package model

import (
	"database/sql"
	"testing"
	"time"
)

func TestIsPublished(t *testing.T) {
	past := sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true}

	if !IsPublished(PostStatusPublished, past) {
		t.Error("published post with a past date should be published")
	}
	if IsPublished(PostStatusDraft, past) {
		t.Error("draft should never be published")
	}
	if IsPublished(PostStatusArchived, past) {
		t.Error("archived post should not be published")
	}
	if IsPublished(PostStatusPublished, sql.NullTime{}) {
		t.Error("published status without a date should not be published")
	}
}
