package store

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE id = $1;`

	usernameExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	createSession = `INSERT INTO sessions (token, user_id, csrf_seed, expiry_timestamp)
    VALUES ($1, $2, $3, NOW() + make_interval(secs => $4))
    RETURNING id, token, user_id, csrf_seed, expiry_timestamp, created_at;`

	resolveSession = `SELECT id, token, user_id, csrf_seed, expiry_timestamp, created_at
    FROM sessions
    WHERE token = $1
    AND expiry_timestamp > NOW();`

	deleteSession = `DELETE FROM sessions WHERE token = $1;`

	pruneExpiredSessions = `DELETE FROM sessions WHERE expiry_timestamp < NOW();`

	createStory = `INSERT INTO stories (title, description, cover_image_url, user_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, cover_image_url, user_id;`

	deleteStory = `DELETE FROM stories WHERE id = $1 AND user_id = $2;`

	listUserStories = `SELECT id, title, description, cover_image_url
    FROM stories
    WHERE user_id = $1
    ORDER BY id DESC;`

	storyOverview = `SELECT stories.id AS story_id, users.username AS author, stories.title, stories.description, COUNT(chapters.id) AS number_of_chapters
    FROM stories
    JOIN users ON stories.user_id = users.id
    LEFT JOIN chapters ON chapters.story_id = stories.id
    WHERE stories.id = $1
    GROUP BY stories.id, users.username, stories.title, stories.description;`

	createChapter = `INSERT INTO chapters (story_id, heading, content, sort_position)
    VALUES ($1, $2, $3, $4)
    RETURNING id, story_id, heading, content, sort_position;`

	listChapters = `SELECT id, story_id, heading, content, sort_position
    FROM chapters
    WHERE story_id = $1
    ORDER BY sort_position ASC;`

	createComment = `INSERT INTO comments (story_id, creator_id, content)
    VALUES ($1, $2, $3)
    RETURNING id, story_id, creator_id, content;`

	deleteComment = `DELETE FROM comments WHERE id = $1 AND creator_id = $2;`

	listStoryComments = `SELECT comments.id, comments.story_id, comments.content, users.username
    FROM comments
    JOIN users ON users.id = comments.creator_id
    WHERE comments.story_id = $1
    ORDER BY comments.id DESC;`

	listUserComments = `SELECT comments.id, stories.id AS story_id, stories.title AS story_title, comments.content
    FROM comments
    JOIN stories ON stories.id = comments.story_id
    WHERE comments.creator_id = $1
    ORDER BY comments.id DESC;`

	addFavorite = `INSERT INTO favorites (user_id, story_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, story_id) DO NOTHING;`

	removeFavorite = `DELETE FROM favorites WHERE user_id = $1 AND story_id = $2;`

	listFavorites = `SELECT stories.id, users.username, stories.title, stories.description
    FROM favorites
    JOIN stories ON stories.id = favorites.story_id
    JOIN users ON users.id = stories.user_id
    WHERE favorites.user_id = $1
    ORDER BY stories.id DESC;`

	createProfile = `INSERT INTO user_profiles (user_id, profile_avatar_url)
    VALUES ($1, $2)
    RETURNING user_id, COALESCE(bio, ''), profile_avatar_url;`

	profileByUsername = `SELECT user_profiles.user_id, users.username, COALESCE(user_profiles.bio, ''), user_profiles.profile_avatar_url
    FROM user_profiles
    JOIN users ON users.id = user_profiles.user_id
    WHERE users.username = $1;`
)
