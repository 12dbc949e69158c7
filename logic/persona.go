package logic

import (
	"list_starling/dto"
	"sort"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_persona.go -package mocks list_starling/logic IPersonaBuilder

const maxPersonaWords = 100

type ListRef struct {
	Id          string
	Name        string
	MemberCount int
}

// PersonaWord is one entry of the word cloud. Lists holds the lists whose
// metadata contributed the word, in first-contribution order; it is never
// empty.
type PersonaWord struct {
	Word  string
	Count int
	Lists []ListRef
}

type AccountPersona struct {
	AccountId string
	Words     []PersonaWord
}

type IPersonaBuilder interface {
	BuildPersona(accountId string, memberships []*dto.ListMembership) *AccountPersona
}

type personaBuilder struct {
}

func NewPersonaBuilder() IPersonaBuilder {
	return &personaBuilder{}
}

// BuildPersona tallies word frequencies over the names and descriptions of
// the lists an account belongs to. Sorted by count, ties alphabetically;
// capped at maxPersonaWords.
func (pb *personaBuilder) BuildPersona(accountId string, memberships []*dto.ListMembership) *AccountPersona {

	counts := make(map[string]int)
	contribs := make(map[string][]ListRef)
	seenLists := make(map[string]map[string]bool)

	for _, m := range memberships {
		for _, token := range tokenizeListText(m.Name + " " + m.Description) {
			counts[token]++
			if seenLists[token] == nil {
				seenLists[token] = make(map[string]bool)
			}
			if !seenLists[token][m.Id] {
				seenLists[token][m.Id] = true
				contribs[token] = append(contribs[token], ListRef{m.Id, m.Name, m.MemberCount})
			}
		}
	}

	words := make([]PersonaWord, 0, len(counts))
	for token, n := range counts {
		words = append(words, PersonaWord{Word: token, Count: n, Lists: contribs[token]})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > maxPersonaWords {
		words = words[:maxPersonaWords]
	}

	return &AccountPersona{AccountId: accountId, Words: words}
}

// tokenizeListText lowercases, replaces everything outside a-z0-9 with
// spaces, and keeps tokens longer than two characters that are not stop
// words.
func tokenizeListText(text string) []string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	var res []string
	for _, token := range strings.Fields(sb.String()) {
		if len(token) <= 2 || stopWords[token] {
			continue
		}
		res = append(res, token)
	}
	return res
}

var stopWords = makeStopWords()

func makeStopWords() map[string]bool {
	list := []string{
		"the", "and", "for", "with", "your", "from", "this", "that", "list", "lists", "member",
		"of", "to", "in", "on", "at", "by", "an", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "but", "if", "or", "because", "as", "until", "while",
		"about", "into", "through", "during", "before", "after", "above", "below", "up", "down", "out",
		"off", "over", "under", "again", "further", "then", "once", "here", "there", "when", "where",
		"why", "how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
		"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will",
		"just", "should", "now", "my", "me", "our", "i", "a", "it", "its",
	}
	res := make(map[string]bool, len(list))
	for _, w := range list {
		res[w] = true
	}
	return res
}
