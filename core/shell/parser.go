package shell

import "strings"

// Command is one parsed pipeline stage. Args[0] names the program or
// builtin; the redirection fields hold file paths stripped from the segment
// text before tokenization.
type Command struct {
	Args         []string
	InputFile    string
	OutputFile   string
	ErrorFile    string
	AppendOutput bool
	AppendError  bool
	Background   bool
}

// ParseCommand parses one pipeline segment into a Command. Matched syntax is
// removed from the working text in a fixed order: variable expansion, the
// background marker, stderr redirection (2>> before 2>), stdout redirection
// (>> before >), input redirection, then tokenization of the remainder.
// Stderr markers must be consumed before stdout markers so the > inside 2>
// is not misread as an output redirect with a filename starting in 2.
func ParseCommand(segment string, vars map[string]string) Command {
	var cmd Command
	text := ExpandVars(segment, vars)

	trimmed := strings.TrimRight(text, " \t")
	if strings.HasSuffix(trimmed, "&") {
		cmd.Background = true
		text = strings.TrimRight(strings.TrimSuffix(trimmed, "&"), " \t")
	}

	if pos := strings.Index(text, "2>>"); pos >= 0 {
		if tokens := Tokenize(text[pos+3:]); len(tokens) > 0 {
			cmd.ErrorFile = tokens[0]
			cmd.AppendError = true
		}
		text = text[:pos]
	} else if pos := strings.Index(text, "2>"); pos >= 0 {
		if tokens := Tokenize(text[pos+2:]); len(tokens) > 0 {
			cmd.ErrorFile = tokens[0]
		}
		text = text[:pos]
	}

	if pos := strings.Index(text, ">>"); pos >= 0 {
		if tokens := Tokenize(text[pos+2:]); len(tokens) > 0 {
			cmd.OutputFile = tokens[0]
			cmd.AppendOutput = true
		}
		text = text[:pos]
	} else if pos := strings.Index(text, ">"); pos >= 0 {
		if tokens := Tokenize(text[pos+1:]); len(tokens) > 0 {
			cmd.OutputFile = tokens[0]
		}
		text = text[:pos]
	}

	if pos := strings.Index(text, "<"); pos >= 0 {
		if tokens := Tokenize(text[pos+1:]); len(tokens) > 0 {
			cmd.InputFile = tokens[0]
		}
		text = text[:pos]
	}

	cmd.Args = Tokenize(text)
	for i, arg := range cmd.Args {
		cmd.Args[i] = ExpandPath(arg)
	}

	return cmd
}

// ParsePipeline splits a line on | and parses each segment independently.
// A pipe character inside quotes still splits the line; that is a known
// limitation of the grammar, kept deliberately and covered by tests. An
// empty line yields an empty pipeline, which callers treat as a no-op.
func ParsePipeline(line string, vars map[string]string) []Command {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	segments := strings.Split(line, "|")
	commands := make([]Command, 0, len(segments))
	for _, segment := range segments {
		commands = append(commands, ParseCommand(segment, vars))
	}
	return commands
}

// ExpandAlias rewrites the head word of the first pipeline command when it
// matches an alias. The stored alias text is re-tokenized and replaces the
// head; the command's remaining arguments are appended after it. Expansion
// is single-pass, so an alias cycle cannot loop.
func ExpandAlias(commands []Command, aliases map[string]string) {
	if len(commands) == 0 || len(commands[0].Args) == 0 {
		return
	}

	replacement, ok := aliases[commands[0].Args[0]]
	if !ok {
		return
	}

	expanded := Tokenize(replacement)
	args := make([]string, 0, len(expanded)+len(commands[0].Args)-1)
	args = append(args, expanded...)
	args = append(args, commands[0].Args[1:]...)
	commands[0].Args = args
}
