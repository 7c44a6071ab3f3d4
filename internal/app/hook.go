package app

import (
	"github.com/sprout-cli/sprout/internal/debug"
	"github.com/sprout-cli/sprout/internal/template/engine"
	"github.com/sprout-cli/sprout/internal/template/model"
)

// newMessageHook turns a declarative complete message into a completion
// hook. The message is rendered against the merged answers; if rendering
// fails the raw message is shown instead.
func newMessageHook(eng engine.Engine, message string) model.CompletionHook {
	return model.CompletionHookFunc(func(meta *model.BuildMetadata, helpers *model.Helpers) error {
		rendered, err := eng.Render(message, meta.Answers)
		if err != nil {
			debug.Debug("[app] Complete message failed to render: %v", err)
			rendered = message
		}
		helpers.Success(rendered)
		return nil
	})
}
