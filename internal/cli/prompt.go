package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"github.com/atheneum-dev/forge/internal/manifest"
)

// promptForParameter interactively asks for one required parameter,
// typed per its spec: a select for enums, a validated input otherwise.
func promptForParameter(name string, spec manifest.ParameterSpec) (interface{}, error) {
	switch spec.Type {
	case manifest.ParamTypeEnum:
		v, err := promptEnum(name, spec)
		return v, err
	case manifest.ParamTypeInt:
		v, err := promptInt(name)
		return v, err
	default:
		v, err := promptString(name)
		return v, err
	}
}

// promptString prompts for a string parameter.
func promptString(name string) (string, error) {
	var result string
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s (required)", name),
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return result, nil
}

// promptInt prompts for an integer parameter, re-asking until the input
// parses.
func promptInt(name string) (int64, error) {
	var raw string
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s (required, integer)", name),
	}
	validator := func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string answer")
		}
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		return nil
	}
	if err := survey.AskOne(prompt, &raw, survey.WithValidator(survey.Required), survey.WithValidator(validator)); err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// promptEnum prompts for an enum parameter with a select over its options.
func promptEnum(name string, spec manifest.ParameterSpec) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: fmt.Sprintf("%s (required)", name),
		Options: spec.Options,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}
