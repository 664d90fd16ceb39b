package langdetect

import "testing"

func BenchmarkFromPathExtension(b *testing.B) {
	for range b.N {
		FromPath("lib/reek/smells/feature_envy.rb")
	}
}

func BenchmarkFromPathFilename(b *testing.B) {
	for range b.N {
		FromPath("Gemfile")
	}
}

func BenchmarkFromPathUnknown(b *testing.B) {
	for range b.N {
		FromPath("notes.zzqx")
	}
}
