/*
Package testutil provides shared helpers for this module's tests.

# Overview

Package tests across the resource packages all need the same two
things: a context that cannot outlive the test, and an HTTP server
standing in for the API. This package provides both so individual
tests stay about behavior rather than plumbing.

# Core helpers

  - Context helpers: TestContext / TestContextWithTimeout /
    CancelledContext, with cleanup registered automatically.
  - ServerClient: an httptest server plus a Client pointed at it,
    both torn down with the test.
  - BrokenClient: a Client whose server is already gone, for
    transport failure paths.
  - JSONHandler / CaptureHandler: canned responses, with optional
    capture of the request for asserting on method, path, headers
    and body.

# Subpackages

  - testutil/fixtures: wire-format response samples (moderation,
    completions, files, fine-tunes, models, error envelopes).

# Usage

	client := testutil.ServerClient(t, testutil.JSONHandler(200, fixtures.ModerationFlagged))
	mod, err := moderation.Create(testutil.TestContext(t), client, moderation.NewParam("text"))
*/
package testutil
