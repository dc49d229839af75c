// Package chat drives multi-turn conversations through the chat
// completions endpoint.
//
// Conversations are a list of role-tagged messages; the three
// constructors SystemMessage, UserMessage and AssistantMessage build
// them without raw struct literals:
//
//	out, err := chat.Create(ctx, client, chat.NewParam("gpt-3.5-turbo",
//		chat.SystemMessage("You are terse."),
//		chat.UserMessage("Why is the sky blue?"),
//	))
package chat
