package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	colorApplication = 0xFFA500
	colorPass        = 0x57F287
	colorFail        = 0xED4245

	applicationTitle = "Customer Support Application."

	closedNotice = "Welcome to the application! Thank you for your interest for applying but unfortunately, we are **Not** taking applications for customer support right now!\n\n" +
		"Applications open every **Sunday at 12:00 AM EST** and close every **Monday at 11:59 PM EST**."

	alreadyAppliedNotice = "You have already applied this week! The applications will reset for you to apply again on **Sunday at 12:00 AM EST**. " +
		"If you believe this is incorrect, please contact the bot owner so they can reset your application file."

	interviewInProgressNotice = "You already have an application in progress! Please finish answering the questions in your DMs first."

	welcomeNotice = "Welcome to the application! Thank you for your interest for applying! Let's start the application, shall we?\n\n" +
		"Before we start, please note that the minimum sentence requirement is **2+ sentences**."

	submittedNotice = "Your application has been submitted! Please wait some time for our CS leadership to review your application and your results will be sent back via **THIS** DM."

	passedNotice = "🎉 Congratulations! You have **passed** your Customer Support application! The role will be added soon. " +
		"If the role is not added, please open a ticket and request Staffing Support so the role may be added. Make sure to attach proof."

	failedNotice = "Thank you for applying. Unfortunately, you did **not pass** this time. They will open again on Sunday at 12:00 AM EST."

	questionFooter = "Please answer with at least 2 sentences."
)

func applicationEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       applicationTitle,
		Color:       colorApplication,
		Description: description,
	}
}

func questionEmbed(number int, question string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Question %d", number),
		Color:       colorApplication,
		Description: fmt.Sprintf("**Q%d:** %s", number, question),
		Footer:      &discordgo.MessageEmbedFooter{Text: questionFooter},
	}
}

func submittedEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "SUBMITTED 🎉",
		Color:       colorApplication,
		Description: submittedNotice,
	}
}

func resultEmbed(passed bool) *discordgo.MessageEmbed {
	if passed {
		return &discordgo.MessageEmbed{
			Title:       "Application Result",
			Color:       colorPass,
			Description: passedNotice,
		}
	}
	return &discordgo.MessageEmbed{
		Title:       "Application Result",
		Color:       colorFail,
		Description: failedNotice,
	}
}
