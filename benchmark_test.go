package translations

import (
	"context"
	"fmt"
	"testing"
)

func benchDictionary(n int) Dictionary {
	d := make(Dictionary, n)
	d["welcome"] = "Welcome"
	for i := 1; i < n; i++ {
		d[fmt.Sprintf("screen.section.key%d", i)] = fmt.Sprintf("Value %d", i)
	}
	return d
}

func BenchmarkTranslation_MemoryHit(b *testing.B) {
	src := newFakeSource()
	src.setDict("en", benchDictionary(500))
	m := New(src)
	ctx := context.Background()
	m.Translations(ctx, "en") // warm

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Translation(ctx, "en", "welcome")
	}
}

func BenchmarkTranslations_Parallel(b *testing.B) {
	src := newFakeSource()
	src.setDict("en", benchDictionary(500))
	m := New(src)
	ctx := context.Background()
	m.Translations(ctx, "en")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Translations(ctx, "en")
		}
	})
}

func BenchmarkFingerprint(b *testing.B) {
	d := benchDictionary(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Fingerprint(d)
	}
}

func BenchmarkDiff(b *testing.B) {
	old := benchDictionary(500)
	fresh := benchDictionary(500)
	fresh["screen.section.key1"] = "changed"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(old, fresh)
	}
}
