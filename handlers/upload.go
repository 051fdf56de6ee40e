package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
)

// readImageFile pulls an optional uploaded file out of a multipart request.
// A missing file is not an error; JSON requests simply carry no file part.
func readImageFile(c *fiber.Ctx, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil || header == nil {
		return "", nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}
