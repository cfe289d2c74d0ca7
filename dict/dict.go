package dict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Sentinel setup errors (spec.md §7): raised synchronously while the puzzle
// is being set up, before solving begins.
var (
	// ErrUnreadable indicates the word-list path could not be opened or read.
	ErrUnreadable = errors.New("dict: word-list path unreadable")
	// ErrInconsistentLength indicates the file mixes words of different
	// lengths; the Word family requires one fixed length k.
	ErrInconsistentLength = errors.New("dict: inconsistent word length")
	// ErrEmpty indicates the word-list file contained no words at all.
	ErrEmpty = errors.New("dict: word list is empty")
)

// Dictionary is a compiled, immutable word list: a trie over byte-valued
// words of one fixed Length, plus the alphabet actually observed (the bytes
// appearing across all loaded words). The parser decides how to interpret
// non-ASCII bytes in the file (spec.md §9 open question); this package is
// oblivious and simply treats each line as a sequence of bytes.
type Dictionary struct {
	Length   int
	Alphabet map[byte]struct{}
	path     string
	t        *trie
}

// Root is the dictionary's start prefix-state, shared across all Word
// constraints bound to this Dictionary.
func (d *Dictionary) Root() State { return Root }

// Advance walks one symbol from state s, returning Dead if b cannot extend
// any word in the dictionary from that prefix.
func (d *Dictionary) Advance(s State, b byte) State { return d.t.advance(s, b) }

// IsAccept reports whether s is a state at which a complete word of this
// dictionary's Length has been consumed.
func (d *Dictionary) IsAccept(s State) bool { return d.t.isAccept(s) }

// States returns every prefix-state in the trie's arena, the initial domain
// a Word constraint's transition relation is built over.
func (d *Dictionary) States() []State { return d.t.states() }

var (
	cacheMu sync.Mutex
	cache   = map[string]*cacheEntry{}
)

type cacheEntry struct {
	once sync.Once
	dict *Dictionary
	err  error
}

// Load reads and compiles the word list at path, caching the compiled
// Dictionary so that two Word constraints over the same (resolved) path
// share one trie instance — spec.md §5's "logically shared, never mutated"
// requirement for the word-list/trie across constraints.
func Load(path string) (*Dictionary, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("dict: resolving %s: %w", path, ErrUnreadable)
	}

	cacheMu.Lock()
	entry, ok := cache[abs]
	if !ok {
		entry = &cacheEntry{}
		cache[abs] = entry
	}
	cacheMu.Unlock()

	entry.once.Do(func() {
		entry.dict, entry.err = load(abs)
	})
	return entry.dict, entry.err
}

func load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: opening %s: %w", path, ErrUnreadable)
	}
	defer f.Close()

	t := newTrie()
	alphabet := make(map[byte]struct{})
	length := -1
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := sc.Bytes()
		if len(word) == 0 {
			continue
		}
		if length == -1 {
			length = len(word)
		} else if len(word) != length {
			return nil, fmt.Errorf("dict: %s: word %q has length %d, expected %d: %w",
				path, word, len(word), length, ErrInconsistentLength)
		}
		cp := make([]byte, len(word))
		copy(cp, word)
		t.insert(cp)
		for _, b := range cp {
			alphabet[b] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dict: reading %s: %w", path, ErrUnreadable)
	}
	if length == -1 {
		return nil, fmt.Errorf("dict: %s: %w", path, ErrEmpty)
	}

	return &Dictionary{Length: length, Alphabet: alphabet, path: path, t: t}, nil
}
