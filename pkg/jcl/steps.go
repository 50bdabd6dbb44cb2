// Package jcl derives job steps from job control text
package jcl

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/zosjobs/jobs-gateway/models"
)

// stepPattern matches EXEC statements of the form //NAME ... PGM=PROGRAM. XX marks statements
// expanded from a procedure. JES listings may prefix each statement with its statement number.
// The first PGM= on the line is the program, later ones belong to PARM strings or comments.
var stepPattern = regexp.MustCompile(`^\s*(?:\d+\s+)?(?://|XX)([^\s*]\S{0,7})\s.*?PGM=([^\s,]{1,8})(?:[\s,]|$)`)

// ExtractSteps returns the steps in order of appearance, numbered from 1
func ExtractSteps(text string) []models.JobStep {
	steps := make([]models.JobStep, 0)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		match := stepPattern.FindStringSubmatch(scanner.Text())
		if len(match) != 3 {
			continue
		}
		steps = append(steps, models.JobStep{
			Name:    match[1],
			Program: match[2],
			Step:    len(steps) + 1,
		})
	}
	return steps
}
