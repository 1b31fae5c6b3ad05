package podnote

import "strings"

// Host identifies a supported podcast hosting service.
type Host string

// Known hosting services.
const (
	HostUnknown       Host = ""
	HostSpotify       Host = "spotify"
	HostApple         Host = "apple"
	HostGoogle        Host = "google"
	HostPocketCasts   Host = "pocketcasts"
	HostAirr          Host = "airr"
	HostOvercast      Host = "overcast"
	HostCastbox       Host = "castbox"
	HostCastro        Host = "castro"
	HostYouTube       Host = "youtube"
	HostPodcastAddict Host = "podcastaddict"
)

// hostSubstrings maps URL substrings to hosts. Matching is case-sensitive
// and first-match-wins; the table is disjoint in practice.
var hostSubstrings = []struct {
	substr string
	host   Host
}{
	{"open.spotify.com", HostSpotify},
	{"podcasts.apple.com", HostApple},
	{"podcasts.google.com", HostGoogle},
	{"pca.st", HostPocketCasts},
	{"www.airr.io", HostAirr},
	{"overcast.fm", HostOvercast},
	{"castbox.fm", HostCastbox},
	{"castro.fm", HostCastro},
	{"youtube.com", HostYouTube},
	{"podcastaddict.com", HostPodcastAddict},
}

// Classify returns the hosting service for a URL, or HostUnknown if the URL
// matches no known service. HostUnknown is a valid classification, not an
// error.
func Classify(url string) Host {
	for _, entry := range hostSubstrings {
		if strings.Contains(url, entry.substr) {
			return entry.host
		}
	}
	return HostUnknown
}

// Supported reports whether the URL belongs to a known hosting service.
func Supported(url string) bool {
	return Classify(url) != HostUnknown
}
