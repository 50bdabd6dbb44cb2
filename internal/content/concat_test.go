package content_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zosjobs/jobs-gateway/internal/content"
	"github.com/zosjobs/jobs-gateway/models"
)

func fetchFrom(contents map[int]string) content.FetchFunc {
	return func(file models.JobFile) (*models.JobFileContent, error) {
		return &models.JobFileContent{Content: contents[file.ID]}, nil
	}
}

func Test_Concatenate(t *testing.T) {
	files := []models.JobFile{{ID: 1}, {ID: 2}, {ID: 3}}

	result, err := content.Concatenate(files, fetchFrom(map[int]string{1: "A", 2: "B", 3: "C"}))
	require.NoError(t, err)
	assert.Equal(t, "ABC", result.Content)
}

func Test_Concatenate_KeepsListingOrder(t *testing.T) {
	files := []models.JobFile{{ID: 3}, {ID: 1}, {ID: 2}}

	result, err := content.Concatenate(files, fetchFrom(map[int]string{1: "A", 2: "B", 3: "C"}))
	require.NoError(t, err)
	assert.Equal(t, "CAB", result.Content)
}

func Test_Concatenate_NoFiles(t *testing.T) {
	result, err := content.Concatenate(nil, fetchFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, "", result.Content)
}

func Test_Concatenate_StopsOnFirstError(t *testing.T) {
	fetchErr := errors.New("fetch failed")
	var fetched []int
	fetch := func(file models.JobFile) (*models.JobFileContent, error) {
		fetched = append(fetched, file.ID)
		if file.ID == 2 {
			return nil, fetchErr
		}
		return &models.JobFileContent{Content: "x"}, nil
	}

	result, err := content.Concatenate([]models.JobFile{{ID: 1}, {ID: 2}, {ID: 3}}, fetch)
	assert.ErrorIs(t, err, fetchErr)
	assert.Nil(t, result)
	assert.Equal(t, []int{1, 2}, fetched)
}
