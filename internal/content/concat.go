package content

import (
	"strings"

	"github.com/zosjobs/jobs-gateway/models"
)

// FetchFunc retrieves the content of one spool file
type FetchFunc func(file models.JobFile) (*models.JobFileContent, error)

// Concatenate joins the content of files in the given order without separators.
// Files are fetched one at a time; the first failure is returned without a partial result.
func Concatenate(files []models.JobFile, fetch FetchFunc) (*models.JobFileContent, error) {
	var builder strings.Builder
	for _, file := range files {
		fileContent, err := fetch(file)
		if err != nil {
			return nil, err
		}
		builder.WriteString(fileContent.Content)
	}
	return &models.JobFileContent{Content: builder.String()}, nil
}
