package alternatives

// AlternativeDetail describes one replacement service. Static reference
// data, never mutated at runtime.
type AlternativeDetail struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// catalogEntry pairs a normalized service key with its alternatives.
// Entries live in a slice rather than a map because substring matching must
// scan keys in a stable declaration order.
type catalogEntry struct {
	key          string
	alternatives []AlternativeDetail
}

// defaultCatalog is the built-in knowledge base of popular subscription
// services and their alternatives. Keys are already normalized (lowercase,
// trimmed).
var defaultCatalog = []catalogEntry{
	{
		key: "netflix",
		alternatives: []AlternativeDetail{
			{Name: "Hulu", Description: "Offers live TV options and a different original content library.", Category: "Streaming Video", Notes: "Bundle with Disney+ and ESPN+ available."},
			{Name: "Amazon Prime Video", Description: "Included with Amazon Prime, good selection of movies and originals.", Category: "Streaming Video"},
			{Name: "Disney+", Description: "Focuses on Disney, Pixar, Marvel, Star Wars, and National Geographic content.", Category: "Streaming Video"},
			{Name: "HBO Max (Max)", Description: "Premium content from HBO, Warner Bros, DC, and Max Originals.", Category: "Streaming Video"},
			{Name: "Apple TV+", Description: "Growing library of high-quality original series and films.", Category: "Streaming Video"},
			{Name: "Peacock", Description: "Content from NBCUniversal, including a free ad-supported tier.", Category: "Streaming Video", Notes: "Free tier available."},
		},
	},
	{
		key: "spotify",
		alternatives: []AlternativeDetail{
			{Name: "Apple Music", Description: "Large music library, integrates well with Apple ecosystem.", Category: "Music Streaming"},
			{Name: "YouTube Music", Description: "Vast catalog including official songs and user uploads, part of YouTube Premium.", Category: "Music Streaming"},
			{Name: "Amazon Music Unlimited", Description: "Extensive music library, HD audio options.", Category: "Music Streaming"},
			{Name: "Tidal", Description: "Focus on high-fidelity audio and artist exclusives.", Category: "Music Streaming"},
		},
	},
	{
		key: "hulu",
		alternatives: []AlternativeDetail{
			{Name: "Netflix", Description: "Vast library of movies, TV shows, and original content.", Category: "Streaming Video"},
			{Name: "Sling TV", Description: "Live TV streaming with customizable channel packages.", Category: "Live TV Streaming"},
			{Name: "YouTube TV", Description: "Live TV from major broadcast and cable networks.", Category: "Live TV Streaming"},
		},
	},
	{
		key: "amazon prime video",
		alternatives: []AlternativeDetail{
			{Name: "Netflix", Description: "Large library of original and licensed content.", Category: "Streaming Video"},
			{Name: "Hulu", Description: "Offers current TV episodes and original series.", Category: "Streaming Video"},
		},
	},
	{
		key: "disney+",
		alternatives: []AlternativeDetail{
			{Name: "Netflix", Description: "Broader selection of general entertainment.", Category: "Streaming Video"},
			{Name: "HBO Max (Max)", Description: "Premium HBO content and Warner Bros. library.", Category: "Streaming Video"},
		},
	},
	{
		// Also covers "Max".
		key: "hbo max",
		alternatives: []AlternativeDetail{
			{Name: "Netflix", Description: "Wide variety of content including many originals.", Category: "Streaming Video"},
			{Name: "Disney+", Description: "Family-friendly content from Disney, Pixar, Marvel, etc.", Category: "Streaming Video"},
			{Name: "Showtime", Description: "Original series, movies, and sports.", Category: "Streaming Video"},
		},
	},
	{
		key: "apple music",
		alternatives: []AlternativeDetail{
			{Name: "Spotify", Description: "Popular music streaming with a vast library and podcasts.", Category: "Music Streaming"},
			{Name: "YouTube Music", Description: "Large catalog including user uploads and music videos.", Category: "Music Streaming"},
		},
	},
	{
		// Often includes YouTube Music.
		key: "youtube premium",
		alternatives: []AlternativeDetail{
			{Name: "Spotify", Description: "Ad-free music and podcasts.", Category: "Music Streaming"},
			{Name: "Netflix", Description: "For video content, if that's the primary use.", Category: "Streaming Video"},
			{Name: "Nebula", Description: "Creator-owned streaming service with educational content.", Category: "Streaming Video"},
		},
	},
	{
		key: "dropbox",
		alternatives: []AlternativeDetail{
			{Name: "Google Drive", Description: "Generous free storage, integrates with Google Workspace.", Category: "Cloud Storage", Notes: "Part of Google One for more storage."},
			{Name: "Microsoft OneDrive", Description: "Integrates with Windows and Microsoft 365.", Category: "Cloud Storage"},
			{Name: "iCloud Drive", Description: "Seamless integration for Apple users.", Category: "Cloud Storage"},
			{Name: "Box", Description: "Focus on business collaboration and security.", Category: "Cloud Storage"},
		},
	},
	{
		// Also covers Google One.
		key: "google drive",
		alternatives: []AlternativeDetail{
			{Name: "Dropbox", Description: "Popular for file syncing and sharing, strong cross-platform support.", Category: "Cloud Storage"},
			{Name: "Microsoft OneDrive", Description: "Good for Windows users and Office integration.", Category: "Cloud Storage"},
		},
	},
	{
		key: "microsoft onedrive",
		alternatives: []AlternativeDetail{
			{Name: "Google Drive", Description: "Cross-platform cloud storage with good free tier.", Category: "Cloud Storage"},
			{Name: "Dropbox", Description: "Reliable file syncing and sharing.", Category: "Cloud Storage"},
		},
	},
	{
		key: "icloud",
		alternatives: []AlternativeDetail{
			{Name: "Google Drive", Description: "Generous free storage, cross-platform.", Category: "Cloud Storage"},
			{Name: "Dropbox", Description: "Popular for file syncing and sharing.", Category: "Cloud Storage"},
			{Name: "Microsoft OneDrive", Description: "Good for Windows users and Office integration.", Category: "Cloud Storage"},
		},
	},
	{
		key: "adobe creative cloud",
		alternatives: []AlternativeDetail{
			{Name: "Affinity Suite (Photo, Designer, Publisher)", Description: "One-time purchase software for photo editing, graphic design, and desktop publishing.", Category: "Creative Software"},
			{Name: "DaVinci Resolve", Description: "Professional video editing software with a powerful free version.", Category: "Video Editing"},
			{Name: "Canva", Description: "User-friendly online design tool, good for social media graphics.", Category: "Graphic Design"},
			{Name: "GIMP", Description: "Free and open-source image editor.", Category: "Photo Editing"},
		},
	},
	{
		// Also covers Office 365.
		key: "microsoft 365",
		alternatives: []AlternativeDetail{
			{Name: "Google Workspace", Description: "Suite of online productivity tools (Docs, Sheets, Slides).", Category: "Productivity Suite"},
			{Name: "LibreOffice", Description: "Free and open-source office suite.", Category: "Productivity Suite"},
			{Name: "Zoho Workplace", Description: "Affordable suite of business applications.", Category: "Productivity Suite"},
		},
	},
	{
		key: "zoom",
		alternatives: []AlternativeDetail{
			{Name: "Google Meet", Description: "Video conferencing integrated with Google Workspace.", Category: "Video Conferencing"},
			{Name: "Microsoft Teams", Description: "Collaboration platform with video meetings, chat, and file sharing.", Category: "Video Conferencing"},
			{Name: "Skype", Description: "Free video and voice calls.", Category: "Video Conferencing"},
		},
	},
	{
		key: "slack",
		alternatives: []AlternativeDetail{
			{Name: "Microsoft Teams", Description: "Offers chat, video meetings, and file storage, often bundled with Microsoft 365.", Category: "Team Communication"},
			{Name: "Discord", Description: "Popular for communities, also used by businesses for team chat.", Category: "Team Communication"},
			{Name: "Google Chat", Description: "Integrated with Google Workspace.", Category: "Team Communication"},
		},
	},
	{
		key: "github pro",
		alternatives: []AlternativeDetail{
			{Name: "GitLab (Free/Premium tiers)", Description: "Offers a comprehensive DevOps platform, free tier is generous.", Category: "Version Control/DevOps"},
			{Name: "Bitbucket (Free/Standard tiers)", Description: "Git repository management, integrates well with Jira.", Category: "Version Control"},
		},
	},
	{
		key: "linkedin premium",
		alternatives: []AlternativeDetail{
			{Name: "Free LinkedIn Account", Description: "Many core networking features are available for free.", Category: "Professional Networking"},
			{Name: "Company-specific career pages", Description: "Directly check career pages of companies you're interested in.", Category: "Job Search"},
			{Name: "Networking events/groups", Description: "Industry-specific groups and events for networking.", Category: "Professional Networking"},
		},
	},
	{
		key: "evernote",
		alternatives: []AlternativeDetail{
			{Name: "Notion", Description: "All-in-one workspace for notes, tasks, wikis, and databases.", Category: "Note Taking/Productivity"},
			{Name: "Microsoft OneNote", Description: "Free-form note-taking app, part of Microsoft ecosystem.", Category: "Note Taking"},
			{Name: "Obsidian", Description: "Powerful knowledge base that works on local Markdown files.", Category: "Note Taking/Knowledge Management"},
			{Name: "Google Keep", Description: "Simple note-taking app, good for quick notes and lists.", Category: "Note Taking"},
		},
	},
	{
		key: "audible",
		alternatives: []AlternativeDetail{
			{Name: "Libby (via local library)", Description: "Borrow audiobooks for free with your library card.", Category: "Audiobooks"},
			{Name: "Scribd", Description: "Subscription service with access to audiobooks, ebooks, magazines, and more.", Category: "Audiobooks/Ebooks"},
			{Name: "Kobo Audiobooks", Description: "Offers individual audiobook purchases and a subscription.", Category: "Audiobooks"},
			{Name: "Google Play Books", Description: "Purchase audiobooks individually.", Category: "Audiobooks"},
		},
	},
}
