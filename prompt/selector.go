package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/utils"
)

const (
	exitCommand     = "exit"
	allCommand      = "all"
	optionSeparator = ","
	confirmAnswer   = "yes"
	greeting        = "Hello! Let's explore some US bikeshare data!"
)

// Selector asks questions on out and reads the answers from in, one line per answer
type Selector struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewSelector(in io.Reader, out io.Writer) *Selector {
	return &Selector{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// CollectFilters greets the user and asks for the cities, months and days to analyze
func (s *Selector) CollectFilters(cities []string) (selection.Filters, error) {
	fmt.Fprintln(s.out, greeting)

	citySelection, err := s.Select(getQuestion("Select city to do analysis", cities), cities)
	if err != nil {
		return selection.Filters{}, err
	}

	monthSelection, err := s.Select(getQuestion("Select month", selection.Months), selection.Months)
	if err != nil {
		return selection.Filters{}, err
	}

	daySelection, err := s.Select(getQuestion("Select day", selection.Weekdays), selection.Weekdays)
	if err != nil {
		return selection.Filters{}, err
	}

	return selection.Filters{
		Cities: citySelection,
		Months: monthSelection,
		Days:   daySelection,
	}, nil
}

// Select asks question until the answer is valid. A valid answer is either all, which selects every
// option, or a comma separated list where every element is one of options. The answer is case
// insensitive. Typing exit returns ErrExitRequested.
func (s *Selector) Select(question string, options []string) (selection.Selection, error) {
	for {
		line, err := s.readLine(question)
		if err != nil {
			return selection.Selection{}, err
		}

		answer := utils.NormalizeToken(line)
		if answer == exitCommand {
			return selection.Selection{}, ErrExitRequested
		}

		if answer == allCommand {
			return selection.Wildcard(options), nil
		}

		selectedOptions, valid := s.validate(strings.Split(answer, optionSeparator), options)
		if valid {
			return selection.NewSelection(selectedOptions, false), nil
		}
		log.Debugf("[component: prompt][method: Select] invalid answer %q, asking again", answer)
	}
}

// Confirm asks a yes or no question. Only yes, in any case and without surrounding spaces, is a
// positive answer. A closed input is a no.
func (s *Selector) Confirm(question string) (bool, error) {
	line, err := s.readLine(question)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return strings.ToLower(strings.TrimRight(line, "\r\n")) == confirmAnswer, nil
}

// validate reports every option that is not valid. All of them are checked so the user
// sees every mistake at once.
func (s *Selector) validate(selectedOptions []string, options []string) ([]string, bool) {
	allOptionsValid := true
	normalized := make([]string, 0, len(selectedOptions))
	for _, selectedOption := range selectedOptions {
		selectedOption = utils.NormalizeToken(selectedOption)
		if !utils.ContainsString(selectedOption, options) {
			allOptionsValid = false
			fmt.Fprintf(s.out, "Option `%s` is not valid\n", selectedOption)
		}
		normalized = append(normalized, selectedOption)
	}
	return normalized, allOptionsValid
}

func (s *Selector) readLine(question string) (string, error) {
	fmt.Fprint(s.out, question)
	line, err := s.reader.ReadString('\n')
	if err == nil {
		return line, nil
	}

	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		// a closed input would make every prompt loop forever
		return "", fmt.Errorf("%w: %w", ErrExitRequested, err)
	}
	return "", fmt.Errorf("error reading answer: %w", err)
}

func getQuestion(question string, options []string) string {
	return fmt.Sprintf("%s (%s): ", question, strings.Join(options, ", "))
}
