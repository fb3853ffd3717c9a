package model

import "strings"

// Interfaces advertised by actuator resources.
const (
	InterfaceActuator = "oic.if.a"
	InterfaceBaseline = "oic.if.baseline"
)

// ResourceType identifies a resource kind and the URI prefixes under which
// bridges publish it. Both are opaque metadata for discovery collaborators.
type ResourceType struct {
	// Tag is the resource type string ("rt").
	Tag string

	// URIPrefixes lists the known addressing conventions.
	URIPrefixes []string
}

// Known resource types.
var (
	ResourceTypeAudio = ResourceType{
		Tag: OICTypeAudio,
		URIPrefixes: []string{
			OCFURIPrefixAudio,
			UPnPURIPrefixAudioRenderingControl,
			UPnPURIPrefixAudio,
		},
	}

	ResourceTypeBinarySwitch = ResourceType{
		Tag: OICTypeBinarySwitch,
		URIPrefixes: []string{
			OCFURIPrefixBinarySwitch,
			UPnPURIPrefixBinarySwitch,
		},
	}
)

// ResourceTypes returns all known resource types.
func ResourceTypes() []ResourceType {
	return []ResourceType{ResourceTypeAudio, ResourceTypeBinarySwitch}
}

// MatchesURI returns true if uri starts with one of the type's prefixes.
func (t ResourceType) MatchesURI(uri string) bool {
	return t.PrefixFor(uri) != ""
}

// PrefixFor returns the longest prefix of uri known to this type, or "".
func (t ResourceType) PrefixFor(uri string) string {
	best := ""
	for _, p := range t.URIPrefixes {
		if strings.HasPrefix(uri, p) && len(p) > len(best) {
			best = p
		}
	}
	return best
}

// ResourceTypeForTag looks up a resource type by its "rt" tag.
func ResourceTypeForTag(tag string) (ResourceType, bool) {
	for _, t := range ResourceTypes() {
		if t.Tag == tag {
			return t, true
		}
	}
	return ResourceType{}, false
}

// ResourceTypeForURI looks up a resource type by URI prefix.
func ResourceTypeForURI(uri string) (ResourceType, bool) {
	for _, t := range ResourceTypes() {
		if t.MatchesURI(uri) {
			return t, true
		}
	}
	return ResourceType{}, false
}
