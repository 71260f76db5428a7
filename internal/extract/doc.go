// Package extract turns parsed Habr pages into typed values.
//
// Every selector the client depends on is supplied through
// types.Selectors, so the whole compatibility surface with the site's
// markup lives here: one extractor per page kind (listing, article,
// comments), each testable against static fixtures.
package extract
