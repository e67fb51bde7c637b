package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"ideaforge/internal/models"
)

// Flag names shared by commands that build a UserContext.
const (
	FlagUser        = "user"
	FlagIdea        = "idea"
	FlagCategory    = "category"
	FlagPlatform    = "platform"
	FlagSuccess     = "success"
	FlagSessionTime = "session-time"
	FlagActions     = "actions"
	FlagFeature     = "feature"
)

// AddContextFlags registers the flags read by ParseUserContext.
func AddContextFlags(flags *pflag.FlagSet) {
	flags.String(FlagUser, "", "User id the suggestions are for")
	flags.StringArray(FlagIdea, nil, "Recent idea (repeatable)")
	flags.String(FlagCategory, "", "Comma-separated preferred categories")
	flags.String(FlagPlatform, "", "Comma-separated platforms, e.g. youtube,tiktok")
	flags.StringArray(FlagSuccess, nil, "Title or text of content that performed well (repeatable)")
	flags.Int(FlagSessionTime, 0, "Average session time in seconds")
	flags.Int(FlagActions, 0, "Average actions per session")
	flags.String(FlagFeature, "", "Comma-separated preferred features")
}

// ParseUserContext builds a UserContext from the flags added by
// AddContextFlags. Unset flags yield empty values.
func ParseUserContext(flags *pflag.FlagSet) (models.UserContext, error) {
	user, _ := flags.GetString(FlagUser)
	ideas, _ := flags.GetStringArray(FlagIdea)
	success, _ := flags.GetStringArray(FlagSuccess)
	sessionTime, _ := flags.GetInt(FlagSessionTime)
	actions, _ := flags.GetInt(FlagActions)
	if sessionTime < 0 || actions < 0 {
		return models.UserContext{}, fmt.Errorf("%w: --%s and --%s must not be negative", models.ErrValidation, FlagSessionTime, FlagActions)
	}

	return models.UserContext{
		UserID:              strings.TrimSpace(user),
		RecentIdeas:         ideas,
		PreferredCategories: ParseList(flags, FlagCategory),
		Platforms:           ParseList(flags, FlagPlatform),
		SuccessfulContent:   success,
		UserBehavior: models.UserBehavior{
			SessionTime:       sessionTime,
			ActionsPerSession: actions,
			PreferredFeatures: ParseList(flags, FlagFeature),
		},
	}, nil
}

// ParseList splits a comma-separated string flag, trimming blanks.
func ParseList(flags *pflag.FlagSet, name string) []string {
	raw, _ := flags.GetString(name)
	var out []string
	if raw != "" {
		for _, item := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(item)
			if trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// ParseMinConfidence returns nil unless the flag was set explicitly, so the
// service default applies.
func ParseMinConfidence(flags *pflag.FlagSet, name string) (*float64, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetFloat64(name)
	if err != nil {
		return nil, err
	}
	if v < 0 || v > 1 {
		return nil, fmt.Errorf("%w: --%s must be within [0,1]", models.ErrValidation, name)
	}
	return &v, nil
}
