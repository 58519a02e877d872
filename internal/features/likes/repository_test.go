package likes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/publicvoice/api/pkg/errors"
)

func TestTranslateInsertErrorDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error collection: publicvoice.likes"},
		},
	}

	err := translateInsertError(dup)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyLiked)
}

func TestTranslateInsertErrorOther(t *testing.T) {
	err := translateInsertError(errors.New("connection reset"))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrAlreadyLiked)
}
