package adminreplies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePostReplyRequest(t *testing.T) {
	req := PostReplyRequest{Description: "  A crew has been dispatched.  "}
	require.NoError(t, ValidatePostReplyRequest(&req))
	assert.Equal(t, "A crew has been dispatched.", req.Description)
}

func TestValidatePostReplyRequestEmpty(t *testing.T) {
	req := PostReplyRequest{Description: "   "}
	assert.Error(t, ValidatePostReplyRequest(&req))
}

func TestValidatePostReplyRequestTooLong(t *testing.T) {
	req := PostReplyRequest{Description: strings.Repeat("a", maxDescriptionLength+1)}
	assert.Error(t, ValidatePostReplyRequest(&req))
}

func TestValidatePostReplyRequestMedia(t *testing.T) {
	req := PostReplyRequest{
		Description: "Crew photo attached",
		ImageURL: "https://cdn.example.com/fix.jpg",
	}
	require.NoError(t, ValidatePostReplyRequest(&req))

	bad := PostReplyRequest{Description: "x", VideoURL: "not-a-url"}
	assert.Error(t, ValidatePostReplyRequest(&bad))
}
