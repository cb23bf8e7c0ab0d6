package utils

import "github.com/bwmarrin/discordgo"

// GuildInfo is one guild the bot is currently a member of.
type GuildInfo struct {
	ID   string
	Name string
}

// DiscordClient is the narrow slice of the live Discord session the command
// handlers actually use. Handlers depend on this instead of the full
// *discordgo.Session so they can run against a fake in tests.
type DiscordClient interface {
	// how many guilds the bot is currently in
	GuildCount() int
	// every guild the bot is currently in
	Guilds() []GuildInfo
	// whether the bot is currently in the guild
	HasGuild(guildID string) bool
	// make the bot leave the guild; network I/O, may fail
	LeaveGuild(guildID string) error
	// send the one reply of an interaction
	Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error
}

type dgClient struct {
	session *discordgo.Session
}

// NewDiscordClient wraps a real session into a DiscordClient.
func NewDiscordClient(session *discordgo.Session) DiscordClient {
	return &dgClient{session: session}
}

func (c *dgClient) GuildCount() int {
	c.session.State.RLock()
	defer c.session.State.RUnlock()
	return len(c.session.State.Guilds)
}

func (c *dgClient) Guilds() []GuildInfo {
	c.session.State.RLock()
	defer c.session.State.RUnlock()
	guilds := make([]GuildInfo, 0, len(c.session.State.Guilds))
	for _, guild := range c.session.State.Guilds {
		guilds = append(guilds, GuildInfo{ID: guild.ID, Name: guild.Name})
	}
	return guilds
}

func (c *dgClient) HasGuild(guildID string) bool {
	c.session.State.RLock()
	defer c.session.State.RUnlock()
	for _, guild := range c.session.State.Guilds {
		if guild.ID == guildID {
			return true
		}
	}
	return false
}

func (c *dgClient) LeaveGuild(guildID string) error {
	return c.session.GuildLeave(guildID)
}

func (c *dgClient) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return c.session.InteractionRespond(i, resp)
}

// CallerID returns the ID of whoever invoked the interaction, from the member
// when invoked in a guild or the user when invoked in a DM.
func CallerID(i *discordgo.InteractionCreate) string {
	switch {
	case i == nil:
		return ""
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.ID
	case i.User != nil:
		return i.User.ID
	default:
		return ""
	}
}

// CallerDisplayName returns the name to show for whoever invoked the
// interaction, preferring the guild nickname.
func CallerDisplayName(i *discordgo.InteractionCreate) string {
	if i == nil {
		return "unknown"
	}
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}
	if user == nil {
		return "unknown"
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// CallerAvatarURL returns the avatar URL of whoever invoked the interaction,
// empty when there is none.
func CallerAvatarURL(i *discordgo.InteractionCreate) string {
	if i == nil {
		return ""
	}
	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}
	if user == nil {
		return ""
	}
	return user.AvatarURL("")
}
