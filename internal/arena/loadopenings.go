package arena

import (
	"context"
	_ "embed"
	"strings"

	"github.com/fixedply/fixedply/internal/host"
)

//go:embed openings.txt
var openingsTxt string

func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {

	for i, opening := range openings {
		var fen, err = parseOpening(opening)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}

	return nil
}

// parseOpening plays a line like "1. e4 c6 2.d4 d5" and returns the final FEN.
func parseOpening(opening string) (string, error) {
	var game, err = host.NewGame("")
	if err != nil {
		return "", err
	}
	for _, token := range strings.Fields(opening) {
		if index := strings.LastIndex(token, "."); index >= 0 {
			token = token[index+1:]
		}
		if token == "" {
			continue
		}
		err = host.PlaySan(game, token)
		if err != nil {
			return "", err
		}
	}
	return game.Position().String(), nil
}

func getOpenings() []string {
	var result []string
	var lines = strings.Split(openingsTxt, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}
