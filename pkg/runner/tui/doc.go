// Package tui runs a respondent session on a terminal: it prompts the
// current section's fields through a swappable PromptDriver (backed by
// AlecAivazis/survey by default), delegates every validation and navigation
// decision to the engine controller, and serialises the descriptive-id
// response document once submission succeeds.
package tui
