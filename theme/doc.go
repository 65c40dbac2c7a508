// Package theme provides the styling data model: themes, per-component
// style sets, style objects, and the theme-scoped caches.
//
// A Theme is an identity-significant handle. Both caches are owned by the
// theme itself, so dropping the theme drops every cached entry with it;
// there is no separate invalidation API.
package theme
