// Package testutil provides the test doubles shared by the collector's
// packages.
//
// Two fluent mocks cover the seams the downloader is built around:
//
//  1. MockRetriever: canned video info per url, optional subtitle sidecar
//     files written into the request's video directory, injected errors and
//     a FetchFunc escape hatch for full control.
//
//  2. MockCollectionDAO / MockFailureSink: in-memory collection log and
//     failure log that record every call for later assertions.
//
// # Usage
//
//	retriever := testutil.NewMockRetriever().
//	    WithInfo(url, &model.VideoInfo{Title: "Lecture"}).
//	    WithSubtitle(url, ".en.vtt", sampleVTT)
//
//	dao := testutil.NewMockCollectionDAO().
//	    WithDownloadedID("75170fc230cd")
//
// Every With method returns the mock, so configuration chains.
package testutil
