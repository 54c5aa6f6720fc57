package content

import "context"

// StaticFetcher serves canned content. Unknown URLs resolve to empty content, not an error.
type StaticFetcher struct {
	pages map[string]Content
}

func NewStaticFetcher(pages map[string]Content) *StaticFetcher {
	return &StaticFetcher{pages: pages}
}

func (s *StaticFetcher) Fetch(_ context.Context, url string) (Content, error) {
	page, ok := s.pages[url]
	if !ok {
		return Content{}, nil
	}

	return Content{
		FullText: page.FullText,
		Headings: append([]string(nil), page.Headings...),
	}, nil
}

// DefaultPages is the canned content for the built-in fallback catalog.
func DefaultPages() map[string]Content {
	return map[string]Content{
		"/docs/intro": {
			FullText: "欢迎来到项目！这是一个优秀的文档模板项目。本项目提供了完整的文档网站解决方案，包括双主题支持、多语言、搜索功能等。您可以快速构建自己的文档网站。项目特性包括响应式设计、现代化UI、SEO优化等。技术栈包括React、TypeScript、Docusaurus等现代技术。",
			Headings: []string{"欢迎", "项目特性", "快速开始", "技术栈"},
		},
		"/en/docs/intro": {
			FullText: "Welcome to the project! This is an excellent documentation template project. This project provides a complete documentation website solution, including dual theme support, multi-language, search functionality, and more. You can quickly build your own documentation website. Project features include responsive design, modern UI, SEO optimization, etc. Tech stack includes React, TypeScript, Docusaurus and other modern technologies.",
			Headings: []string{"Welcome", "Project Features", "Quick Start", "Tech Stack"},
		},
		"/docs/api/overview": {
			FullText: "API 概述文档。本节介绍了项目的主要API接口。包括RESTful API设计原则、认证机制、错误处理、数据格式等内容。我们遵循RESTful设计规范，使用JSON作为数据交换格式。所有API都需要进行身份验证。支持OAuth2.0和JWT token认证方式。",
			Headings: []string{"API概述", "RESTful设计", "认证机制", "数据格式", "错误处理"},
		},
		"/en/docs/api/overview": {
			FullText: "API Overview documentation. This section introduces the main API interfaces of the project. Including RESTful API design principles, authentication mechanisms, error handling, data formats, etc. We follow RESTful design specifications and use JSON as the data exchange format. All APIs require authentication. Support OAuth2.0 and JWT token authentication methods.",
			Headings: []string{"API Overview", "RESTful Design", "Authentication", "Data Format", "Error Handling"},
		},
		"/docs/getting-started/installation": {
			FullText: "安装指南。本指南将帮助您安装和配置项目。首先确保您的系统满足最低要求：Node.js 16+、npm 7+。然后按照步骤安装：克隆项目代码，安装依赖包。配置环境变量，启动开发服务器。如果遇到问题，请查看故障排除部分。支持Windows、macOS、Linux系统。",
			Headings: []string{"系统要求", "安装步骤", "环境配置", "启动服务", "故障排除"},
		},
		"/en/docs/getting-started/installation": {
			FullText: "Installation Guide. This guide will help you install and configure the project. First ensure your system meets the minimum requirements: Node.js 16+, npm 7+. Then follow the installation steps: clone project code, install dependencies. Configure environment variables and start development server. If you encounter issues, please check troubleshooting section. Support Windows, macOS, Linux systems.",
			Headings: []string{"System Requirements", "Installation Steps", "Environment Setup", "Start Service", "Troubleshooting"},
		},
		"/docs/getting-started/quickstart": {
			FullText: "快速开始指南。几分钟内启动并运行项目！首先克隆代码仓库 git clone，安装项目依赖 npm install。配置必要的环境变量 .env文件。运行开发命令 npm start 启动本地服务器。打开浏览器访问 localhost:3000 查看效果。修改配置文件自定义您的网站。添加您的文档内容到docs目录。",
			Headings: []string{"克隆项目", "安装依赖", "环境配置", "启动服务", "自定义配置", "添加内容"},
		},
		"/en/docs/getting-started/quickstart": {
			FullText: "Quick Start Guide. Get the project up and running in minutes! First clone code repository with git clone, install project dependencies with npm install. Configure necessary environment variables in .env file. Run development command npm start to start local server. Open browser and visit localhost:3000 to view results. Modify configuration files to customize your website. Add your documentation content to docs directory.",
			Headings: []string{"Clone Project", "Install Dependencies", "Environment Setup", "Start Service", "Custom Configuration", "Add Content"},
		},
	}
}
