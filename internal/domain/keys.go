package domain

// KeyPrefix namespaces every key the service writes. Overridden from
// config at startup so several deployments can share one database.
var KeyPrefix = "somm:"
