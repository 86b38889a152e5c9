package main

// schemaPaths are tried in order so the generator runs from the repo root
// or from this directory (go generate).
var schemaPaths = []string{
	"client/endpoints.yaml",
	"../../client/endpoints.yaml",
}

// outputPaths mirror schemaPaths.
var outputPaths = []string{
	"client",
	"../../client",
}

const outputFile = "builders_generated.go"

// pagingParams are the parameters Pages/QueryAll drive on paged endpoints.
// A paged endpoint must declare both.
var pagingParams = []string{"limit", "offset"}
