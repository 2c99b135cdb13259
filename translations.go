// Package translations implements the client-side translation cache of the
// job-portal mobile app: a per-language dictionary cache with an in-memory
// tier, a persistent key-value tier, and a network tier behind it.
//
// Lookups are fail-soft. A language that cannot be resolved — unsupported
// code, backend failure, corrupted cache entry — degrades to an empty
// dictionary, and missing keys resolve to the key itself so broken
// translations stay visible instead of blanking the UI.
//
// Basic usage:
//
//	import (
//	    translations "github.com/armenasatryan9603/job-portal-mobile-sub002"
//	    "github.com/armenasatryan9603/job-portal-mobile-sub002/cache"
//	    "github.com/armenasatryan9603/job-portal-mobile-sub002/provider"
//	)
//
//	func main() {
//	    store, _ := cache.NewFileStore("/var/cache/jobportal")
//	    src := provider.NewRESTSource(provider.RESTConfig{
//	        BaseURL: "https://api.example.com",
//	    })
//
//	    m := translations.New(src, translations.WithStore(store))
//
//	    dict := m.Translations(context.Background(), "hy")
//	    fmt.Println(dict["welcome"])
//	    fmt.Println(m.Translation(context.Background(), "hy", "profile.title"))
//	}
package translations
