package app

//request parameter validation
import (
	"Samplepedia/model"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
	"regexp"
	"strings"
)

func validate(s interface{}) (bool, string) {
	Validate := validator.New()
	en_us := en.New()
	uni := ut.New(en_us)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(Validate, trans)
	errs := Validate.Struct(s)
	if errs != nil {
		var msg string
		for _, err := range errs.(validator.ValidationErrors) {
			msg += err.Translate(trans) + "\n"
		}
		return false, msg
	}
	return true, ""
}

type loginValidator struct {
	Username string `form:"username" validate:"lte=20,required"`
	Password string `form:"password" validate:"gte=6,lte=64,required,printascii"`
}

func (lv *loginValidator) isOk() (bool, string) {
	if strings.ContainsAny(lv.Username, " \n\t\r") {
		return false, "username cannot contain whitespace"
	}
	return validate(lv)
}

type registerValidator struct {
	Username string `form:"username" validate:"lte=20,required"`
	Password string `form:"password" validate:"gte=6,lte=64,required,printascii"`
	Email    string `form:"email" validate:"email,required"`
	Desc     string `form:"desc" validate:"lte=255"`
}

func (rv *registerValidator) isOk() (bool, string) {
	if strings.ContainsAny(rv.Username, " \n\t\r") {
		return false, "username cannot contain whitespace"
	}
	if strings.ContainsAny(rv.Password, " \n\t\r") {
		return false, "password cannot contain whitespace"
	}
	return validate(rv)
}

type updateValidator struct {
	Username    string `form:"username" validate:"lte=20"`
	OldPassword string `form:"old_password" validate:"lte=64,printascii"`
	NewPassword string `form:"new_password" validate:"lte=64,printascii"`
	Email       string `form:"email"`
	Desc        string `form:"description" validate:"lte=255"`
}

func (uv *updateValidator) isOk() (bool, string) {
	if uv.Username != "" && strings.ContainsAny(uv.Username, " \n\t\r") {
		return false, "username cannot contain whitespace"
	}
	if uv.NewPassword != "" && len(uv.NewPassword) < 6 {
		return false, "password must be at least 6 characters"
	}
	if uv.Email != "" {
		pattern := `\w+([-+.]\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*`
		reg := regexp.MustCompile(pattern)
		if !reg.MatchString(uv.Email) {
			return false, "invalid email"
		}
	}
	return validate(uv)
}

var sha256Pattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

type taskValidator struct {
	Sha256       string `form:"sha256" validate:"required"`
	DownloadLink string `form:"download_link" validate:"lte=500"`
	Description  string `form:"description" validate:"required"`
	Goal         string `form:"goal" validate:"required"`
	Difficulty   string `form:"difficulty" validate:"required"`
	YoutubeID    string `form:"youtube_id" validate:"lte=32"`
}

func (tv *taskValidator) isOk() (bool, string) {
	if !sha256Pattern.MatchString(tv.Sha256) {
		return false, "must be a valid SHA256 hash (64 hexadecimal characters)"
	}
	if !model.IsDifficulty(tv.Difficulty) {
		return false, "unknown difficulty"
	}
	return validate(tv)
}

type solutionValidator struct {
	Title   string `form:"title" validate:"required,lte=200"`
	Kind    string `form:"kind" validate:"required"`
	Url     string `form:"url" validate:"lte=500"`
	Content string `form:"content"`
}

//external solutions need a url, onsite articles need markdown content
func (sv *solutionValidator) isOk() (bool, string) {
	if !model.IsSolutionType(sv.Kind) {
		return false, "unknown solution type"
	}
	if sv.Kind == model.Onsite {
		if strings.TrimSpace(sv.Content) == "" {
			return false, "on-site solutions need markdown content"
		}
	} else if strings.TrimSpace(sv.Url) == "" {
		return false, "external solutions need a url"
	}
	return validate(sv)
}
