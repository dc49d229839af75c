/*
Package moderation classifies text against the API's content policy
categories.

# Overview

A single Create call sends the input text to the moderations endpoint
and returns the per-category verdicts and confidence scores. Seven
categories are evaluated: hate, hate/threatening, self-harm, sexual,
sexual/minors, violence and violence/graphic.

# Wire names

Three of the category keys contain slashes and one a hyphen, so the
JSON names cannot double as field names. The struct tags on
Categories and CategoryScores are the single place the mapping is
defined; no other file renames fields.

# Leniency

Responses are decoded leniently: unknown keys are ignored and missing
keys default to false or zero. A verdict absent from the wire reads
as "not flagged" rather than an error, which matches how the endpoint
has historically evolved its response shape.

# Usage

	param := moderation.NewParam("I want to hurt them.").WithModel(moderation.ModelLatest)
	mod, err := moderation.Create(ctx, client, param)
	if err != nil {
		return err
	}
	if mod.Flagged {
		// inspect mod.Results[0].Categories
	}
*/
package moderation
