// Package content renders the response text for each dialogue turn. A flat
// registry maps content keys to renderers; most keys resolve to fixed
// markdown, a handful interpolate the accumulated filing profile.
package content
