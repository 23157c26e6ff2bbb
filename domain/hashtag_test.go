package domain

import (
	"reflect"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("hi #Foo and #foo2 #foo")
	want := []string{"foo", "foo2", "foo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractHashtags: got %v want %v", got, want)
	}
}

func TestExtractHashtags_NoTags(t *testing.T) {
	if got := ExtractHashtags("nothing to see here"); got != nil {
		t.Fatalf("expected nil for tagless text, got %v", got)
	}
}

func TestExtractHashtags_WordBoundary(t *testing.T) {
	got := ExtractHashtags("#one,two #three_four #5ive # ")
	want := []string{"one", "three_four", "5ive"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractHashtags: got %v want %v", got, want)
	}
}
