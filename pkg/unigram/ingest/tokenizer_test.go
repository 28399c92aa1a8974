package ingest

import (
	"reflect"
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("The T-Rex saw a stegosaurus.")
	want := []string{"the", "t-rex", "saw", "a", "stegosaurus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeKeepsNumbersAndApostrophes(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("It's 65 million years old")
	want := []string{"it's", "65", "million", "years", "old"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeStopwords(t *testing.T) {
	tok := NewTokenizer([]string{"the", "a"})

	got := tok.Tokenize("the dinosaur ate a fern")
	want := []string{"dinosaur", "ate", "fern"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeStripsDanglingPunctuation(t *testing.T) {
	tok := NewTokenizer(nil)

	got := tok.Tokenize("--well- 'quoted' --")
	want := []string{"well", "quoted"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	tok := NewTokenizer([]string{"the"})

	got := tok.Filter([]string{"the", "dinosaur", "the", "fern"})
	want := []string{"dinosaur", "fern"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}

	// No stopwords means no filtering.
	all := NewTokenizer(nil)
	in := []string{"the", "dinosaur"}
	if got := all.Filter(in); !reflect.DeepEqual(got, in) {
		t.Errorf("Filter = %v, want %v", got, in)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := NewTokenizer(nil)

	if got := tok.Tokenize("  ...  "); len(got) != 0 {
		t.Errorf("Tokenize = %v, want empty", got)
	}
}
