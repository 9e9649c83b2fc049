// Package tui fills a form in the terminal. It projects one step at a time,
// prompts for each field through a PromptDriver (survey by default), offers
// the navigation the step allows and returns the submission as JSON, form
// encoding or plain text.
package tui
