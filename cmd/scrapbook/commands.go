package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"scrapbook/domain"
	"scrapbook/internal"
	"scrapbook/services"
	"scrapbook/storage/assets"
	"sort"
	"strings"
	"time"
)

var stdout io.Writer = os.Stdout

type command struct {
	usage string
	run   func(ctx context.Context, app *application, args []string) error
}

var commands = map[string]command{
	"signup":        {"-email E -password P", signUp},
	"signin":        {"-email E -password P", signIn},
	"signout":       {"", signOut},
	"whoami":        {"", whoAmI},
	"add-friend":    {"-email E", addFriend},
	"friends":       {"[-favorites] [-watch]", listFriends},
	"favorite":      {"-id FRIEND_ID", toggleFavorite},
	"remove-friend": {"-id FRIEND_ID", removeFriend},
	"send":          {"-to EMAIL MESSAGE...", send},
	"inbox":         {"[-limit N] [-watch]", inbox},
	"search":        {"TEXT...", searchInbox},
	"profile":       {"[-display-name D -nickname N [-picture FILE]]", profile},
	"blacklist":     {"list | add WORD... | remove WORD", blacklist},
	"serve":         {"", serve},
}

func usage(out io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(out, "usage: scrapbook COMMAND [ARGS]")
	for _, name := range names {
		fmt.Fprintf(out, "  %-14s %s\n", name, commands[name].usage)
	}
}

func flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func credentials(name string, args []string) (string, string, error) {
	fs := flags(name)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	return *email, *password, nil
}

func signUp(ctx context.Context, app *application, args []string) error {
	email, password, err := credentials("signup", args)
	if err != nil {
		return err
	}
	s, err := app.provider.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	success(stdout, "Welcome %s, your id is %s", s.Identity.Email, s.Identity.ID)
	return app.remember(s)
}

func signIn(ctx context.Context, app *application, args []string) error {
	email, password, err := credentials("signin", args)
	if err != nil {
		return err
	}
	s, err := app.provider.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	success(stdout, "Signed in as %s", s.Identity.Email)
	return app.remember(s)
}

func signOut(ctx context.Context, app *application, _ []string) error {
	if err := app.provider.SignOut(ctx); err != nil {
		return err
	}
	success(stdout, "Signed out")
	return app.forget()
}

func whoAmI(_ context.Context, app *application, _ []string) error {
	identity, err := app.me()
	if err != nil {
		return err
	}
	table := newTable(stdout, "ID", "Email", "Display name", "Nickname")
	table.Append([]string{identity.ID, identity.Email, identity.DisplayName, identity.Nickname})
	table.Render()
	return nil
}

func addFriend(ctx context.Context, app *application, args []string) error {
	fs := flags("add-friend")
	email := fs.String("email", "", "friend's email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}
	edge, err := app.friends.AddFriend(ctx, me.ID, *email)
	if err != nil {
		return err
	}
	success(stdout, "%s is now a friend (id %s)", edge.Label(), edge.ID)
	return nil
}

func listFriends(ctx context.Context, app *application, args []string) error {
	fs := flags("friends")
	favorites := fs.Bool("favorites", false, "favorites only")
	watch := fs.Bool("watch", false, "keep printing the list as it changes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}
	opts := services.ListFriendsOptions{FavoritesOnly: *favorites}
	if !*watch {
		edges, err := app.friends.ListFriends(ctx, me.ID, opts)
		if err != nil {
			return err
		}
		printFriends(edges)
		return nil
	}
	stream, err := app.friends.WatchFriends(ctx, me.ID, opts)
	if err != nil {
		return err
	}
	return follow(ctx, stream, printFriends)
}

func printFriends(edges []domain.FriendEdge) {
	table := newTable(stdout, "", "ID", "Name", "Email", "Since")
	for _, edge := range edges {
		table.Append([]string{star(edge.Favorite), edge.ID, edge.Label(), edge.Email, when(edge.CreatedAt)})
	}
	table.Render()
}

func toggleFavorite(ctx context.Context, app *application, args []string) error {
	fs := flags("favorite")
	id := fs.String("id", "", "friend id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}
	edge, err := app.friends.ToggleFavorite(ctx, me.ID, *id)
	if err != nil {
		return err
	}
	if edge.Favorite {
		success(stdout, "%s is a favorite", edge.Label())
	} else {
		success(stdout, "%s is no longer a favorite", edge.Label())
	}
	return nil
}

func removeFriend(ctx context.Context, app *application, args []string) error {
	fs := flags("remove-friend")
	id := fs.String("id", "", "friend id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}
	if err = app.friends.RemoveFriend(ctx, me.ID, *id); err != nil {
		return err
	}
	success(stdout, "Friend removed")
	return nil
}

func send(ctx context.Context, app *application, args []string) error {
	fs := flags("send")
	to := fs.String("to", "", "recipient email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}
	recipient, err := app.friends.FindUserByEmail(ctx, *to)
	if err != nil {
		return err
	}
	message, err := app.messages.Send(ctx, me.ID, recipient.ID, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	success(stdout, "Sent to %s: %s", recipient.Email, message.Body)
	return nil
}

func inbox(ctx context.Context, app *application, args []string) error {
	fs := flags("inbox")
	limit := fs.Int("limit", app.config.InboxLimit, "maximum number of messages, 0 for all")
	watch := fs.Bool("watch", false, "keep printing the inbox as messages arrive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}
	opts := services.InboxOptions{Limit: *limit}
	if !*watch {
		messages, err := app.messages.Inbox(ctx, me.ID, opts)
		if err != nil {
			return err
		}
		printMessages(messages)
		return nil
	}
	stream, err := app.messages.WatchInbox(ctx, me.ID, opts)
	if err != nil {
		return err
	}
	return follow(ctx, stream, printMessages)
}

func searchInbox(ctx context.Context, app *application, args []string) error {
	me, err := app.me()
	if err != nil {
		return err
	}
	messages, err := app.messages.Search(ctx, me.ID, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printMessages(messages)
	return nil
}

func printMessages(messages []domain.Message) {
	table := newTable(stdout, "ID", "From", "At", "Message")
	for _, m := range messages {
		table.Append([]string{short(m.ID), short(m.SenderID), when(m.CreatedAt), m.Body})
	}
	table.Render()
}

// follow prints every update until the stream ends or ctx is done.
func follow[T any](ctx context.Context, stream *services.Stream[T], show func([]T)) error {
	defer stream.Cancel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case items, ok := <-stream.C():
			if !ok {
				return stream.Err()
			}
			fmt.Fprintf(stdout, "\n--- %s ---\n", time.Now().Format(time.TimeOnly))
			show(items)
		}
	}
}

func profile(ctx context.Context, app *application, args []string) error {
	fs := flags("profile")
	displayName := fs.String("display-name", "", "display name")
	nickname := fs.String("nickname", "", "nickname")
	picture := fs.String("picture", "", "JPEG or PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	me, err := app.me()
	if err != nil {
		return err
	}

	var p domain.Profile
	if *displayName == "" && *nickname == "" && *picture == "" {
		p, err = app.profiles.Get(ctx, me.ID)
	} else {
		request := services.SaveProfileRequest{DisplayName: *displayName, Nickname: *nickname}
		if *picture != "" {
			if request.Picture, err = os.ReadFile(*picture); err != nil {
				return err
			}
		}
		p, err = app.profiles.Save(ctx, me.ID, request)
	}
	if err != nil {
		return err
	}
	url, err := app.profiles.PictureURL(ctx, p)
	if err != nil {
		app.log.Warn("Picture URL unavailable", "ref", p.PictureRef, "error", err)
	}
	table := newTable(stdout, "Email", "Display name", "Nickname", "Picture")
	table.Append([]string{p.Email, p.DisplayName, p.Nickname, url})
	table.Render()
	return nil
}

func blacklist(_ context.Context, app *application, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		words, err := app.blacklist.Words()
		if err != nil {
			return err
		}
		for _, w := range words {
			fmt.Fprintln(stdout, w)
		}
		return nil
	case "add":
		if err := app.blacklist.Add(args[1:]...); err != nil {
			return err
		}
		success(stdout, "%d word(s) added", len(args[1:]))
		return nil
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: blacklist remove WORD")
		}
		if err := app.blacklist.Remove(args[1]); err != nil {
			return err
		}
		success(stdout, "%s removed", args[1])
		return nil
	}
	return fmt.Errorf("unknown blacklist action %q", args[0])
}

// serve exposes the Badger assets and a document browser until interrupted.
func serve(ctx context.Context, app *application, _ []string) error {
	if app.blobs == nil {
		return fmt.Errorf("serve needs ASSET_BACKEND=%s", internal.AssetBackendBadger)
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.DebugServerPort),
		Handler:           internal.NewDebugServer(app.store, app.blobs, assets.BlobReference, app.log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()
	success(stdout, "Browse http://localhost:%d/inspect?collection=%s", app.config.DebugServerPort, domain.CollectionUsers)

	select {
	case <-ctx.Done():
	case err := <-errChan:
		return err
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdown)
}
