package app

import "github.com/jsamuelsen/daily-motivation/internal/domain"

// fallbackQuotes are served when no provider yields an acceptable quote.
var fallbackQuotes = []domain.Quote{
	{ID: "fallback-1", Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{ID: "fallback-2", Content: "Innovation distinguishes between a leader and a follower.", Author: "Steve Jobs"},
	{ID: "fallback-3", Content: "Life is what happens to you while you're busy making other plans.", Author: "John Lennon"},
	{ID: "fallback-4", Content: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{ID: "fallback-5", Content: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle"},
	{ID: "fallback-6", Content: "The only impossible journey is the one you never begin.", Author: "Tony Robbins"},
	{ID: "fallback-7", Content: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{ID: "fallback-8", Content: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{ID: "fallback-9", Content: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{ID: "fallback-10", Content: "Don't let yesterday take up too much of today.", Author: "Will Rogers"},
	{ID: "fallback-11", Content: "You learn more from failure than from success.", Author: "Unknown"},
	{ID: "fallback-12", Content: "If you are working on something exciting that you really care about, you don't have to be pushed. The vision pulls you.", Author: "Steve Jobs"},
	{ID: "fallback-13", Content: "People who are crazy enough to think they can change the world, are the ones who do.", Author: "Rob Siltanen"},
	{ID: "fallback-14", Content: "We may encounter many defeats but we must not be defeated.", Author: "Maya Angelou"},
	{ID: "fallback-15", Content: "The only person you are destined to become is the person you decide to be.", Author: "Ralph Waldo Emerson"},
	{ID: "fallback-16", Content: "Go confidently in the direction of your dreams. Live the life you have imagined.", Author: "Henry David Thoreau"},
	{ID: "fallback-17", Content: "The two most important days in your life are the day you are born and the day you find out why.", Author: "Mark Twain"},
	{ID: "fallback-18", Content: "Your limitation—it's only your imagination.", Author: "Unknown"},
	{ID: "fallback-19", Content: "Push yourself, because no one else is going to do it for you.", Author: "Unknown"},
	{ID: "fallback-20", Content: "Great things never come from comfort zones.", Author: "Unknown"},
	{ID: "fallback-21", Content: "Dream it. Wish it. Do it.", Author: "Unknown"},
	{ID: "fallback-22", Content: "Success doesn't just find you. You have to go out and get it.", Author: "Unknown"},
	{ID: "fallback-23", Content: "The harder you work for something, the greater you'll feel when you achieve it.", Author: "Unknown"},
	{ID: "fallback-24", Content: "Dream bigger. Do bigger.", Author: "Unknown"},
	{ID: "fallback-25", Content: "Don't stop when you're tired. Stop when you're done.", Author: "Unknown"},
	{ID: "fallback-26", Content: "Wake up with determination. Go to bed with satisfaction.", Author: "Unknown"},
	{ID: "fallback-27", Content: "Do something today that your future self will thank you for.", Author: "Sean Patrick Flanery"},
	{ID: "fallback-28", Content: "Little things make big things happen.", Author: "John Wooden"},
	{ID: "fallback-29", Content: "It's going to be hard, but hard does not mean impossible.", Author: "Unknown"},
	{ID: "fallback-30", Content: "Don't wait for opportunity. Create it.", Author: "Unknown"},
}

// FallbackQuotes returns a copy of the embedded fallback list.
func FallbackQuotes() []domain.Quote {
	out := make([]domain.Quote, len(fallbackQuotes))
	copy(out, fallbackQuotes)

	return out
}
